/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package config

import (
	"log/slog"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/factory"
	"dirpx.dev/enumx/strategy"
)

const (
	// DefaultFirstID represents the default for FirstID.
	// Auto-assigned identifiers start at 1.
	DefaultFirstID = 1
	// DefaultNamePolicy represents the default for NamePolicy.
	DefaultNamePolicy = apis.NameLastWriteWins
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		FirstID:    DefaultFirstID,
		NamePolicy: DefaultNamePolicy,
		Factory:    DefaultFactory(),
		Logger:     DefaultLogger(),
	}
}

// DefaultFactory returns the factory used for members without an object:
// a host implementing apis.Initializer is initialized with the member id and
// name, any other host yields a new zero *Host, and a nil or zero-size host
// yields an *apis.Marker. Zero-size hosts skip the first two steps because
// Go may hand out the same address for every allocation of such a type.
func DefaultFactory() apis.Factory {
	return factory.New(
		strategy.NewInitializerStrategy(),
		strategy.NewReflectStrategy(),
		strategy.NewMarkerStrategy(),
	)
}

// DefaultLogger returns a logger that discards everything.
func DefaultLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithFirstID sets the FirstID option.
func WithFirstID(id int) Option {
	return func(c *apis.Config) {
		c.FirstID = id
	}
}

// WithNamePolicy sets the NamePolicy option.
// Unknown policies reset to the default.
func WithNamePolicy(p apis.NamePolicy) Option {
	return func(c *apis.Config) {
		switch p {
		case apis.NameLastWriteWins, apis.NameReject:
			c.NamePolicy = p
		default:
			c.NamePolicy = DefaultNamePolicy
		}
	}
}

// WithFactory sets the Factory option.
// A nil factory resets to the default.
func WithFactory(f apis.Factory) Option {
	return func(c *apis.Config) {
		if f == nil {
			c.Factory = DefaultFactory()
			return
		}
		c.Factory = f
	}
}

// WithLogger sets the Logger option.
// A nil logger resets to the default.
func WithLogger(l *slog.Logger) Option {
	return func(c *apis.Config) {
		if l == nil {
			c.Logger = DefaultLogger()
			return
		}
		c.Logger = l
	}
}
