// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-ad-board/models"
)

func newUserCommand(a *app) *cobra.Command {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users",
	}

	var create models.UserCreate
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Register a new user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := a.server.CreateUser(cmd.Context(), create)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), user)
		},
	}
	createCmd.Flags().StringVar(&create.Name, "name", "", "user name, letters only")
	createCmd.Flags().StringVar(&create.Email, "user-email", "", "user email")
	createCmd.Flags().StringVar(&create.Password, "user-password", "", "user password")
	_ = createCmd.MarkFlagRequired("name")
	_ = createCmd.MarkFlagRequired("user-email")
	_ = createCmd.MarkFlagRequired("user-password")

	getCmd := &cobra.Command{
		Use:   "get ID",
		Short: "Show a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			user, err := a.server.GetUser(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), user)
		},
	}

	updateCmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change a user's name or password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			patch := models.UserPatch{
				Name:     stringFlag(cmd, "name"),
				Password: stringFlag(cmd, "new-password"),
			}
			updated, err := a.server.UpdateUser(cmd.Context(), id, patch)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), updated)
		},
	}
	updateCmd.Flags().String("name", "", "new name")
	updateCmd.Flags().String("new-password", "", "new password")

	deleteCmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a user and their advertisements",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			deleted, err := a.server.DeleteUser(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), deleted)
		},
	}

	userCmd.AddCommand(createCmd, getCmd, updateCmd, deleteCmd)
	return userCmd
}
