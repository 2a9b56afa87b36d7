package config

import (
	"fmt"
	"strings"

	"github.com/verte-zerg/worklog/internal/model"
)

// Defaults for report presentation.
const (
	DefaultBackend    = "csv"
	DefaultPlotHeight = 10
	DefaultAvgWindow  = 7
)

var backends = []string{"csv", "sqlite", "memory"}

// Settings is the resolved configuration used by commands.
type Settings struct {
	Backend   string
	StorePath string
	Report    model.ReportConfig
}

// Overrides carries values set explicitly on the command line.
// Nil means the flag was not given.
type Overrides struct {
	Backend *string
	Path    *string
}

// Resolve merges the config file, environment and flag overrides, in that
// order of increasing precedence. lookup may be nil.
func Resolve(file FileConfig, lookup func(string) (string, bool), flags Overrides) (Settings, error) {
	settings := Settings{
		Backend: DefaultBackend,
		Report: model.ReportConfig{
			PlotHeight: DefaultPlotHeight,
			Color:      true,
			AvgWindow:  DefaultAvgWindow,
		},
	}
	if lookup == nil {
		lookup = func(string) (string, bool) { return "", false }
	}

	applyString(&settings.Backend, file.Store.Backend)
	applyString(&settings.StorePath, file.Store.Path)
	if v, ok := lookup(EnvStoreBackend); ok && strings.TrimSpace(v) != "" {
		settings.Backend = v
	}
	if v, ok := lookup(EnvStorePath); ok && strings.TrimSpace(v) != "" {
		settings.StorePath = v
	}
	applyString(&settings.Backend, flags.Backend)
	applyString(&settings.StorePath, flags.Path)

	settings.Backend = strings.ToLower(strings.TrimSpace(settings.Backend))
	if !knownBackend(settings.Backend) {
		return Settings{}, fmt.Errorf("unknown store backend %q (available: %s)",
			settings.Backend, strings.Join(backends, ", "))
	}
	if strings.TrimSpace(settings.StorePath) == "" {
		settings.StorePath = defaultStorePath(settings.Backend)
	}

	if file.Report.PlotHeight != nil {
		settings.Report.PlotHeight = *file.Report.PlotHeight
	}
	if file.Report.Color != nil {
		settings.Report.Color = *file.Report.Color
	}
	if file.Report.AvgWindow != nil {
		settings.Report.AvgWindow = *file.Report.AvgWindow
	}
	if settings.Report.PlotHeight <= 0 {
		return Settings{}, fmt.Errorf("report plot-height must be > 0")
	}
	if settings.Report.AvgWindow <= 0 {
		return Settings{}, fmt.Errorf("report avg-window must be > 0")
	}
	return settings, nil
}

func applyString(target, value *string) {
	if value == nil {
		return
	}
	*target = *value
}

func knownBackend(name string) bool {
	for _, b := range backends {
		if b == name {
			return true
		}
	}
	return false
}

func defaultStorePath(backend string) string {
	switch backend {
	case "sqlite":
		return DefaultDBPath()
	case "memory":
		return ""
	default:
		return DefaultCSVPath()
	}
}
