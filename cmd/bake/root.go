package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"hunt-api/internal/handlers/cookie"
	"hunt-api/internal/shared"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "bake",
		Short:         "Decode and bake recipe cookies without running the server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newDecodeCmd(), newRunCmd())
	return root
}

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode [cookie-header]",
		Short: "Print the decoded recipe payload",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			header, err := headerFromArgs(cmd, args)
			if err != nil {
				return err
			}
			payload, err := cookie.DecodePayload(header)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), payload)
			return err
		},
	}
}

func newRunCmd() *cobra.Command {
	var indent bool
	cmd := &cobra.Command{
		Use:   "run [cookie-header]",
		Short: "Bake the recipe against the pantry and print the result",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			header, err := headerFromArgs(cmd, args)
			if err != nil {
				return err
			}
			payload, err := cookie.DecodePayload(header)
			if err != nil {
				return err
			}
			req, err := cookie.ParseRecipeRequest(payload)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			if indent {
				enc.SetIndent("", "  ")
			}
			return enc.Encode(cookie.Bake(req))
		},
	}
	cmd.Flags().BoolVar(&indent, "indent", false, "Pretty print the result")
	return cmd
}

// headerFromArgs builds a request header from the argument, or from stdin
// when no argument is given.
func headerFromArgs(cmd *cobra.Command, args []string) (http.Header, error) {
	var value string
	if len(args) == 1 {
		value = args[0]
	} else {
		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, errors.Join(errors.New("failed to read stdin"), err)
		}
		value = strings.TrimSpace(string(raw))
	}
	if value == "" {
		return nil, shared.ErrMissingPayload
	}
	header := http.Header{}
	header.Set(shared.RecipeHeader, value)
	return header, nil
}
