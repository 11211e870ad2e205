package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"

	"prism/internal/jsonutil"
	"prism/internal/layouts"
	"prism/internal/pty"
)

// RegisterDemoLayouts registers the content providers the demo ships with.
// Tabs reference these by layout id; a tab bound to an unregistered id just
// renders empty and stays fully draggable.
func RegisterDemoLayouts(reg *layouts.Registry) error {
	entries := []struct {
		meta     layouts.Meta
		provider layouts.Provider
	}{
		{
			meta: layouts.Meta{
				ID:          "clock",
				Title:       "Clock",
				Description: "Current time; set the \"format\" param to change formatting",
			},
			provider: clockProvider,
		},
		{
			meta: layouts.Meta{
				ID:          "notes",
				Title:       "Notes",
				Description: "Static text from the \"text\" param",
			},
			provider: notesProvider,
		},
		{
			meta: layouts.Meta{
				ID:          "sysinfo",
				Title:       "System",
				Description: "Host, memory, and CPU snapshot",
			},
			provider: sysinfoProvider,
		},
		{
			meta: layouts.Meta{
				ID:          "shell",
				Title:       "Shell",
				Description: "Output of the \"command\" param run under a pty",
			},
			provider: shellProvider,
		},
	}
	for _, e := range entries {
		if err := reg.Register(e.meta, e.provider); err != nil {
			return err
		}
	}
	return nil
}

func clockProvider(_ context.Context, req layouts.Request) (layouts.Content, error) {
	format := jsonutil.GetStringOr(req.Params, "format", time.RFC1123)
	return layouts.Content{
		Title: "Clock",
		Body:  time.Now().Format(format),
	}, nil
}

func notesProvider(_ context.Context, req layouts.Request) (layouts.Content, error) {
	text := jsonutil.GetStringOr(req.Params, "text",
		"Drag tab headers to reorder, move, or split.\nSPC opens the command menu.")
	return layouts.Content{Title: "Notes", Body: text}, nil
}

func sysinfoProvider(ctx context.Context, _ layouts.Request) (layouts.Content, error) {
	var b strings.Builder

	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return layouts.Content{}, err
	}
	fmt.Fprintf(&b, "host     %s (%s %s)\n", info.Hostname, info.Platform, info.PlatformVersion)
	fmt.Fprintf(&b, "uptime   %s\n", (time.Duration(info.Uptime) * time.Second).String())

	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		fmt.Fprintf(&b, "memory   %.1f%% of %.1f GiB\n",
			vm.UsedPercent, float64(vm.Total)/(1<<30))
	}
	if pcts, err := cpu.PercentWithContext(ctx, 0, false); err == nil && len(pcts) > 0 {
		fmt.Fprintf(&b, "cpu      %.1f%%\n", pcts[0])
	}
	return layouts.Content{Title: "System", Body: b.String()}, nil
}

func shellProvider(ctx context.Context, req layouts.Request) (layouts.Content, error) {
	command := jsonutil.GetStringOr(req.Params, "command", "uptime")
	out, err := pty.Capture(ctx, command, 24, 80)
	if err != nil {
		return layouts.Content{}, fmt.Errorf("run %q: %w", command, err)
	}
	return layouts.Content{Title: command, Body: out}, nil
}
