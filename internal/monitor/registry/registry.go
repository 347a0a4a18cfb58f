package registry

import (
	"BPJS_Monitoring_Service/internal/monitor/model"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type file struct {
	Endpoints []model.EndpointConfig `yaml:"endpoints"`
}

// activity is decoded separately so an omitted is_active means active.
type activity struct {
	Endpoints []struct {
		IsActive *bool `yaml:"is_active"`
	} `yaml:"endpoints"`
}

// Load reads an endpoint registry file. ${VAR} references are expanded from the environment first.
func Load(path string) ([]model.EndpointConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("registry.Load: %w", err)
	}
	defer f.Close()
	cfgs, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("registry.Load %s: %w", path, err)
	}
	return cfgs, nil
}

func Parse(r io.Reader) ([]model.EndpointConfig, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	expanded := []byte(os.ExpandEnv(string(raw)))

	var parsed file
	dec := yaml.NewDecoder(bytes.NewReader(expanded))
	dec.KnownFields(true)
	if err = dec.Decode(&parsed); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	var active activity
	if err = yaml.Unmarshal(expanded, &active); err != nil {
		return nil, err
	}
	for i := range parsed.Endpoints {
		parsed.Endpoints[i].IsActive = active.Endpoints[i].IsActive == nil || *active.Endpoints[i].IsActive
	}
	return parsed.Endpoints, nil
}
