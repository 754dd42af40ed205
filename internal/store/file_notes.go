// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-notes/models"
	"gopkg.in/yaml.v3"
)

// LoadSeedFile reads a list of notes to create from fileName. The format is
// picked by extension: .yaml/.yml or .json.
//
// Example YAML:
//
//	- title: Groceries
//	  content: milk, eggs
func LoadSeedFile(fileName string) ([]models.NoteCreateParams, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingSeedFile, err)
	}

	var seed []models.NoteCreateParams
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &seed)
	case ".json":
		err = json.Unmarshal(data, &seed)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSeedFormat, fileName)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingSeedFile, err)
	}

	return seed, nil
}
