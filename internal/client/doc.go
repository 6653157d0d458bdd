// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the sitectl command-line application.
//
// It wires the cobra command tree to the server adapter, the local
// configuration assembler, the file watcher and the terminal preview.
package client
