package config

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"golang.org/x/crypto/ssh"
	"sigs.k8s.io/yaml"
)

// Load reads and validates the configuration in the given directory.
// A missing file surfaces as fs.ErrNotExist so callers can fall back
// to Default.
func Load(fsys afero.Fs, path string) (*Configuration, error) {
	// If given the path to a config.yaml file, move back up a level.
	if filepath.Base(path) == ConfigurationName {
		path = filepath.Dir(path)
	}

	contents, err := afero.ReadFile(fsys, filepath.Join(path, ConfigurationName))
	if err != nil {
		return nil, err
	}

	var out Configuration
	if err := yaml.UnmarshalStrict(contents, &out); err != nil {
		return nil, fmt.Errorf("parse %s: %w", ConfigurationName, err)
	}
	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("validate %s: %w", ConfigurationName, err)
	}
	return &out, nil
}

// Initialize writes the default configuration and a fresh SSH host key
// into the directory, skipping anything that already exists.
func Initialize(fsys afero.Fs, path string) (*Configuration, error) {
	configPath := filepath.Join(path, ConfigurationName)
	switch _, err := fsys.Stat(configPath); {
	case err == nil:
		logrus.WithField("path", configPath).Info("configuration exists, keeping it")
	case errors.Is(err, fs.ErrNotExist):
		if err := afero.WriteFile(fsys, configPath, defaultConfigData, 0644); err != nil {
			return nil, err
		}
		logrus.WithField("path", configPath).Info("wrote default configuration")
	default:
		return nil, err
	}

	keyPath := filepath.Join(path, HostKeyName)
	switch _, err := fsys.Stat(keyPath); {
	case err == nil:
		logrus.WithField("path", keyPath).Info("host key exists, keeping it")
	case errors.Is(err, fs.ErrNotExist):
		keyPem, err := generateHostKey()
		if err != nil {
			return nil, fmt.Errorf("generate host key: %w", err)
		}
		if err := afero.WriteFile(fsys, keyPath, keyPem, 0600); err != nil {
			return nil, err
		}
		logrus.WithField("path", keyPath).Info("wrote host key; set ssh.host_key to use it")
	default:
		return nil, err
	}

	return Load(fsys, path)
}

// generateHostKey creates a PEM encoded ed25519 private key.
func generateHostKey() ([]byte, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, err
	}

	block, err := ssh.MarshalPrivateKey(priv, "")
	if err != nil {
		return nil, err
	}
	return pem.EncodeToMemory(block), nil
}
