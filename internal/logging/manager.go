package logging

import (
	"fmt"

	"prodcopy-utils/internal/logging/adapters"
)

// Manager initializes and owns the logging system
type Manager struct {
	logger *MultiLogger
}

// Options describes the logging configuration the manager accepts.
// Mirrors the Logging section of the application config without importing it.
type Options struct {
	Level    string
	Format   string
	Adapters []AdapterConfig
}

// NewManager creates a new logging manager
func NewManager() *Manager {
	return &Manager{logger: NewMultiLogger()}
}

// Initialize initializes the logging system from configuration
func (m *Manager) Initialize(opts Options) error {
	m.logger.SetLevel(ParseLogLevel(opts.Level))

	if len(opts.Adapters) == 0 {
		// No adapters configured: default stdout adapter in the configured format
		adapter := adapters.NewStdoutAdapter("stdout", adapters.StdoutConfig{Format: opts.Format})
		return m.logger.AddAdapter(adapter)
	}

	for _, ac := range opts.Adapters {
		if !ac.Enabled {
			continue
		}

		adapter, err := m.createAdapter(ac)
		if err != nil {
			return fmt.Errorf("failed to create adapter %s: %w", ac.Name, err)
		}
		if err := m.logger.AddAdapter(adapter); err != nil {
			return fmt.Errorf("failed to add adapter %s: %w", ac.Name, err)
		}
	}

	return nil
}

func (m *Manager) createAdapter(ac AdapterConfig) (LogAdapter, error) {
	switch ac.Type {
	case "stdout":
		return adapters.NewStdoutAdapter(ac.Name, adapters.StdoutConfig{
			Format:    stringOption(ac.Options, "format", "json"),
			Colorized: boolOption(ac.Options, "colorized", false),
		}), nil
	case "file":
		return adapters.NewFileAdapter(ac.Name, adapters.FileConfig{
			FilePath:    stringOption(ac.Options, "file_path", ""),
			CreateDirs:  boolOption(ac.Options, "create_dirs", true),
			SyncOnWrite: boolOption(ac.Options, "sync_on_write", false),
		})
	default:
		return nil, fmt.Errorf("unsupported adapter type: %s", ac.Type)
	}
}

// GetLogger returns the initialized logger
func (m *Manager) GetLogger() Logger {
	return m.logger
}

// Close closes the logging system
func (m *Manager) Close() error {
	if m.logger != nil {
		return m.logger.Close()
	}
	return nil
}

// Global manager instance
var globalManager *Manager

// Initialize initializes the global logging system
func Initialize(opts Options) error {
	globalManager = NewManager()
	return globalManager.Initialize(opts)
}

// GetGlobalLogger returns the global logger instance. Falls back to a basic
// stdout JSON logger when Initialize was never called.
func GetGlobalLogger() Logger {
	if globalManager == nil {
		globalManager = NewManager()
		adapter := adapters.NewStdoutAdapter("stdout", adapters.StdoutConfig{Format: "json"})
		globalManager.logger.AddAdapter(adapter)
	}
	return globalManager.logger
}

// Close closes the global logging system
func Close() error {
	if globalManager != nil {
		return globalManager.Close()
	}
	return nil
}

func stringOption(options map[string]interface{}, key, def string) string {
	if v, ok := options[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return def
}

func boolOption(options map[string]interface{}, key string, def bool) bool {
	if v, ok := options[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return def
}
