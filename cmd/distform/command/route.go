package command

import (
	"context"
	"errors"
	"fmt"
	"place-distance-service/internal/form"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var routeFrom, routeTo string

var routeCmd = &cobra.Command{
	Use:   "route",
	Short: "Resolve two places and print the distance between them",
	RunE: func(cmd *cobra.Command, _ []string) error {
		f, err := newForm()
		if err != nil {
			return err
		}
		return runRoute(cmd.Context(), f, routeFrom, routeTo)
	},
}

// runRoute searches both places concurrently, then calculates. The view
// renders every step; the returned error explains the first failure.
func runRoute(ctx context.Context, f *form.Form, from, to string) error {
	var g errgroup.Group
	for role, query := range map[form.Role]string{form.Start: from, form.End: to} {
		role, query := role, query // per-iteration copies (go < 1.22)
		g.Go(func() error {
			st, _ := f.SearchLocation(ctx, role, query)
			if st.Kind != form.StatusFound {
				return fmt.Errorf("%s %q: %s", role, query, st.Message)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if _, ok := f.CalculateDistance(ctx); !ok {
		return errors.New(form.MsgCalculateFailed)
	}
	return nil
}

func init() {
	routeCmd.Flags().StringVar(&routeFrom, "from", "", "starting place")
	routeCmd.Flags().StringVar(&routeTo, "to", "", "destination")
	routeCmd.MarkFlagRequired("from")
	routeCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(routeCmd)
}
