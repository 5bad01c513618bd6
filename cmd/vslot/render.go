package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/spf13/cobra"

	"github.com/vango-dev/slot/internal/errors"
	"github.com/vango-dev/slot/internal/fixture"
	"github.com/vango-dev/slot/pkg/render"
	"github.com/vango-dev/slot/pkg/slot"
)

type renderOptions struct {
	pretty  bool
	fire    []string
	unmount bool
	metrics bool
}

func renderCmd(root *rootOptions) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <fixture>",
		Short: "Compose a fixture and print the HTML",
		Long: `Compose the slot described by a fixture file onto its child, render
the composed element and report which handles were written.

Examples:
  vslot render item.yaml
  vslot render item.yaml --fire click
  vslot render item.yaml --unmount --metrics`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, root, opts, args[0])
		},
	}

	cmd.Flags().BoolVarP(&opts.pretty, "pretty", "p", false, "Pretty-print HTML")
	cmd.Flags().StringSliceVar(&opts.fire, "fire", nil, "Dispatch events on the composed element (e.g. click)")
	cmd.Flags().BoolVar(&opts.unmount, "unmount", false, "Unmount after rendering and report the cleared handles")
	cmd.Flags().BoolVar(&opts.metrics, "metrics", false, "Print composition metrics")

	return cmd
}

func runRender(cmd *cobra.Command, root *rootOptions, opts *renderOptions, path string) error {
	s, err := newSession(cmd, root, opts.metrics)
	if err != nil {
		return err
	}
	f, err := fixture.Load(path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	built := fixture.Build(f, func(owner, event string, args ...any) {
		info(out, "%s → %s", event, owner)
	})

	var outcome slot.Outcome
	node := s.composer(slot.ObserverFunc(func(o slot.Outcome) { outcome = o })).
		Compose(built.Props, built.Ref, built.Child())
	if node == nil {
		return rejection(f, outcome)
	}

	renderer := render.NewRenderer(render.RendererConfig{
		Pretty:       s.cfg.Render.Pretty || opts.pretty,
		Indent:       s.cfg.Render.Indent,
		HydrationIDs: s.cfg.Render.HydrationIDs,
	})
	html, err := renderer.RenderToString(node)
	if err != nil {
		return err
	}
	fmt.Fprint(out, html)
	if !strings.HasSuffix(html, "\n") {
		fmt.Fprintln(out)
	}

	printRefs(out, "Refs", built)

	if len(opts.fire) > 0 {
		if node.HID == "" {
			return errors.New(errors.CodeEventNotFound).
				WithDetail("The composed element has no hydration ID, so no handlers were registered.").
				WithSuggestion("Set render.hydration_ids to true.")
		}
		fmt.Fprintln(out, "Events")
		for _, event := range opts.fire {
			if err := renderer.Dispatch(node.HID, event); err != nil {
				return err
			}
		}
	}

	if opts.unmount {
		renderer.Unmount()
		printRefs(out, "After unmount", built)
	}

	if s.registry != nil && opts.metrics {
		return printMetrics(out, s.registry)
	}
	return nil
}

// rejection turns a rejected outcome into the matching diagnostic.
func rejection(f *fixture.Fixture, o slot.Outcome) error {
	name := f.Name
	if name == "" {
		name = "fixture"
	}
	return errors.New(o.Reason.Code()).
		WithDetail(fmt.Sprintf("%s: the slot rendered nothing (%s child)", name, o.Reason))
}

func printRefs(w io.Writer, title string, b *fixture.Built) {
	if len(b.RefOrder) == 0 {
		return
	}
	fmt.Fprintln(w, title)
	for _, name := range b.RefOrder {
		if n := b.Refs[name].Current(); n != nil {
			info(w, "%s = <%s>", name, n.Tag)
		} else {
			info(w, "%s = unset", name)
		}
	}
}

func printMetrics(w io.Writer, reg prometheus.Gatherer) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "Metrics")
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			info(w, "%s%s %s", mf.GetName(), labels(m), sample(mf.GetType(), m))
		}
	}
	return nil
}

func labels(m *dto.Metric) string {
	pairs := make([]string, 0, len(m.GetLabel()))
	for _, l := range m.GetLabel() {
		pairs = append(pairs, fmt.Sprintf("%s=%q", l.GetName(), l.GetValue()))
	}
	if len(pairs) == 0 {
		return ""
	}
	sort.Strings(pairs)
	return "{" + strings.Join(pairs, ",") + "}"
}

func sample(t dto.MetricType, m *dto.Metric) string {
	switch t {
	case dto.MetricType_COUNTER:
		return fmt.Sprintf("%g", m.GetCounter().GetValue())
	case dto.MetricType_HISTOGRAM:
		h := m.GetHistogram()
		return fmt.Sprintf("count=%d sum=%g", h.GetSampleCount(), h.GetSampleSum())
	case dto.MetricType_GAUGE:
		return fmt.Sprintf("%g", m.GetGauge().GetValue())
	default:
		return t.String()
	}
}
