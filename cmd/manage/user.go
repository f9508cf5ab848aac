package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ManuelReschke/NewsNotes/app/forms"
	"github.com/ManuelReschke/NewsNotes/app/models"
	"github.com/ManuelReschke/NewsNotes/app/repository"
)

func userCommand(m *manage) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage user accounts",
	}

	var username, password string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a user account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return m.withRepositories(func(repos *repository.Repositories) error {
				f, err := forms.ValidateSignup(map[string]string{"username": username}, password, password, repos.User)
				if err != nil {
					return err
				}
				if !f.Valid() {
					return formError(f)
				}

				u, err := models.CreateUser(username, password)
				if err != nil {
					return err
				}
				if err := repos.User.Create(u); err != nil {
					return fmt.Errorf("create user: %w", err)
				}
				printf(cmd, "Created user %s (#%d)", u.Username, u.ID)
				return nil
			})
		},
	}
	create.Flags().StringVarP(&username, "username", "u", "", "login name")
	create.Flags().StringVarP(&password, "password", "p", "", "password, at least 8 characters")
	_ = create.MarkFlagRequired("username")
	_ = create.MarkFlagRequired("password")

	cmd.AddCommand(create)

	return cmd
}

func formError(f *forms.Form) error {
	var parts []string
	for field, messages := range f.Errors {
		parts = append(parts, field+": "+strings.Join(messages, " "))
	}
	sort.Strings(parts)
	return fmt.Errorf("invalid input: %s", strings.Join(parts, "; "))
}
