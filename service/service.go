// Package service assembles the configured services and manages their lifetimes.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/regdom/regdom-go"
	"github.com/regdom/regdom-go/api"
	"go.uber.org/zap"
)

// Config is the main configuration structure.
// It may be marshaled as or unmarshaled from JSON.
type Config struct {
	Table TableConfig `json:"table,omitzero"`
	API   api.Config  `json:"api,omitzero"`
}

// Manager initializes the service manager.
func (sc *Config) Manager(logger *zap.Logger) (*Manager, error) {
	if !sc.API.Enabled {
		return nil, errors.New("no services to start")
	}

	tree, err := sc.Table.Tree()
	if err != nil {
		return nil, fmt.Errorf("failed to load rule table: %w", err)
	}

	logger.Info("Loaded public suffix rule table",
		zap.String("source", sc.Table.source()),
		zap.Int("nodes", tree.NumNodes()),
	)

	apiServer, err := sc.API.NewServer(logger, tree)
	if err != nil {
		return nil, fmt.Errorf("failed to create API server: %w", err)
	}

	return &Manager{
		services: []regdom.Service{apiServer},
		logger:   logger,
	}, nil
}

// Manager manages the services.
type Manager struct {
	services []regdom.Service
	logger   *zap.Logger
}

// Start starts all configured services.
func (m *Manager) Start(ctx context.Context) error {
	for _, s := range m.services {
		if err := s.Start(ctx); err != nil {
			kv := s.ZapField()
			return fmt.Errorf("failed to start %s=%q: %w", kv.Key, kv.String, err)
		}
	}
	return nil
}

// Stop stops all running services.
func (m *Manager) Stop() {
	for _, s := range m.services {
		kv := s.ZapField()
		if err := s.Stop(); err != nil {
			m.logger.Warn("Failed to stop service", kv, zap.Error(err))
			continue
		}
		m.logger.Info("Stopped service", kv)
	}
}
