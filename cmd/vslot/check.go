package main

import (
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/vango-dev/slot/internal/errors"
	"github.com/vango-dev/slot/internal/fixture"
	"github.com/vango-dev/slot/pkg/slot"
)

func checkCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <fixture>...",
		Short: "Check that fixtures compose",
		Long: `Compose every fixture and report whether its slot received exactly one
element child. Failing fixtures are listed with their diagnostic code and
the command exits non-zero.

Examples:
  vslot check fixtures/*.yaml
  vslot check --dev item.yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, root, args)
		},
	}
	return cmd
}

func runCheck(cmd *cobra.Command, root *rootOptions, paths []string) error {
	s, err := newSession(cmd, root, false)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var outcome slot.Outcome
	composer := s.composer(slot.ObserverFunc(func(o slot.Outcome) { outcome = o }))

	var result *multierror.Error
	for _, path := range paths {
		f, err := fixture.Load(path)
		if err != nil {
			failure(out, "%s: %s", path, errors.FromError(err, errors.CodeFixtureRead).FormatCompact())
			result = multierror.Append(result, err)
			continue
		}

		b := fixture.Build(f, nil)
		if composer.Compose(b.Props, b.Ref, b.Child()) == nil {
			failure(out, "%s: %s %s", path, outcome.Reason.Code(), outcome.Reason)
			result = multierror.Append(result, rejection(f, outcome))
			continue
		}
		success(out, "%s: <%s> with %d attributes", path, outcome.Tag, outcome.Attrs)
	}

	if err := result.ErrorOrNil(); err != nil {
		return errors.Newf(errors.CategoryCLI, "%d of %d fixtures failed", len(result.Errors), len(paths)).Wrap(err)
	}
	return nil
}
