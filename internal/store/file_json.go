// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-messenger/internal/logger"
)

// jsonFileStore keeps every record in a single JSON document on disk. The
// whole document is rewritten on each Put and Delete.
type jsonFileStore struct {
	path   string
	logger *logger.Logger

	mu      sync.RWMutex
	records map[string]json.RawMessage
}

type jsonPersistedState struct {
	Records map[string]json.RawMessage `json:"records"`
}

// NewJSONFileStore opens (or lazily creates) the JSON document at path.
func NewJSONFileStore(path string, log *logger.Logger) (KeyValueStore, error) {
	s := &jsonFileStore{
		path:    path,
		logger:  log,
		records: make(map[string]json.RawMessage),
	}
	if err := s.load(); err != nil {
		log.Err(err).Str("func", "NewJSONFileStore").Msg("error loading json store")
		return nil, err
	}
	return s, nil
}

func (s *jsonFileStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.records[key]
	if !ok {
		return nil, ErrRecordNotFound
	}
	return append([]byte(nil), value...), nil
}

func (s *jsonFileStore) Put(_ context.Context, key string, value []byte) error {
	if !json.Valid(value) {
		return fmt.Errorf("%w: value for %q is not json", ErrEncodingRecord, key)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[key] = append(json.RawMessage(nil), value...)
	return s.persist()
}

func (s *jsonFileStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[key]; !ok {
		return nil
	}
	delete(s.records, key)
	return s.persist()
}

func (s *jsonFileStore) Close() error {
	return nil
}

func (s *jsonFileStore) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read json storage file: %w", err)
	}
	if len(data) == 0 {
		return nil
	}

	var st jsonPersistedState
	if err = json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("%w: decode json storage file: %w", ErrDecodingRecord, err)
	}
	if st.Records != nil {
		s.records = st.Records
	}

	return nil
}

func (s *jsonFileStore) persist() error {
	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create json storage dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(jsonPersistedState{Records: s.records}, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingRecord, err)
	}

	if err = os.WriteFile(s.path, payload, 0o600); err != nil {
		s.logger.Err(err).Str("func", "*jsonFileStore.persist").Msg("error writing json storage file")
		return fmt.Errorf("write json storage file: %w", err)
	}

	return nil
}
