// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-ad-board/models"
)

func newAdvertisementCommand(a *app) *cobra.Command {
	advCmd := &cobra.Command{
		Use:     "adv",
		Aliases: []string{"advertisement"},
		Short:   "Manage advertisements",
		Long:    "Manage advertisements. Create, update and delete require --email and --password of the owner.",
	}

	var create models.AdvertisementCreate
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Publish an advertisement",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			adv, err := a.server.CreateAdvertisement(cmd.Context(), create)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), adv)
		},
	}
	createCmd.Flags().StringVar(&create.Title, "title", "", "title, 5 to 70 characters")
	createCmd.Flags().StringVar(&create.Description, "description", "", "description, 10 to 500 characters")
	_ = createCmd.MarkFlagRequired("title")
	_ = createCmd.MarkFlagRequired("description")

	getCmd := &cobra.Command{
		Use:   "get ID",
		Short: "Show an advertisement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			adv, err := a.server.GetAdvertisement(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), adv)
		},
	}

	updateCmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change an advertisement's title or description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			patch := models.AdvertisementPatch{
				Title:       stringFlag(cmd, "title"),
				Description: stringFlag(cmd, "description"),
			}
			updated, err := a.server.UpdateAdvertisement(cmd.Context(), id, patch)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), updated)
		},
	}
	updateCmd.Flags().String("title", "", "new title")
	updateCmd.Flags().String("description", "", "new description")

	deleteCmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Remove an advertisement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			deleted, err := a.server.DeleteAdvertisement(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), deleted)
		},
	}

	advCmd.AddCommand(createCmd, getCmd, updateCmd, deleteCmd)
	return advCmd
}
