// SPDX-License-Identifier: EPL-2.0

// Package config loads and saves user settings as JSON and converts
// them into the typed configurations the pipeline and waveform
// packages consume. A missing config file yields the defaults.
package config
