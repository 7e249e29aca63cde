// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"net"
	"strconv"
)

// Well-known environment names. Any other value is accepted and rendered
// with the generic icon.
const (
	EnvironmentHome    = "home"
	EnvironmentOffice  = "office"
	EnvironmentDefault = "default"
)

// Profile is an environment profile decoded from one of the JSON files in
// the config directory. A Profile is read once at startup and never mutated
// afterwards, so it is safe to share between concurrent requests.
type Profile struct {
	// Environment names the active profile (e.g. "home", "office").
	Environment string `json:"environment" validate:"required"`

	// Description is free text shown on the status page.
	Description string `json:"description"`

	// Development holds the listener settings.
	Development Development `json:"development" validate:"required"`

	// Network holds the outbound proxy settings.
	Network Network `json:"network"`

	// raw is the document the profile was decoded from. It is echoed back
	// verbatim by /api/config, keys the struct does not know included.
	raw json.RawMessage
}

// Development holds the listener and debug settings of a profile.
type Development struct {
	Port      int    `json:"port" validate:"required"`
	Host      string `json:"host" validate:"required"`
	DebugMode bool   `json:"debug_mode"`
}

// Network holds the proxy settings of a profile. ProxyURL may be empty when
// Proxy is false.
type Network struct {
	Proxy    bool   `json:"proxy"`
	ProxyURL string `json:"proxy_url,omitempty"`
}

// UnmarshalJSON decodes the profile fields and keeps a copy of the source
// document.
func (p *Profile) UnmarshalJSON(b []byte) error {
	type plain Profile
	var v plain
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	*p = Profile(v)
	p.raw = append(json.RawMessage(nil), b...)
	return nil
}

// Raw returns the JSON document the profile was decoded from. For profiles
// built in code it falls back to marshaling the known fields.
func (p *Profile) Raw() (json.RawMessage, error) {
	if len(p.raw) > 0 {
		return p.raw, nil
	}

	type plain Profile
	return json.Marshal(plain(*p))
}

// Address returns the listener address in host:port form.
func (p *Profile) Address() string {
	return net.JoinHostPort(p.Development.Host, strconv.Itoa(p.Development.Port))
}

// BaseURL returns the http URL the server is reachable at.
func (p *Profile) BaseURL() string {
	return "http://" + p.Address()
}

// Icon returns the symbol shown next to the environment name.
func (p *Profile) Icon() string {
	switch p.Environment {
	case EnvironmentHome:
		return "🏠"
	case EnvironmentOffice:
		return "🏢"
	default:
		return "⚙️"
	}
}
