// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

// User-facing strings shared by the handlers and the startup log. The
// server speaks Spanish to its users; logs keep the same wording so that
// operators see what the page shows.
const (
	// MsgNotFoundPage is the exact body of every 404 response.
	MsgNotFoundPage = "<h1>404 - Página no encontrada</h1>"

	// MsgStarting is logged before the listener is bound.
	MsgStarting = "Iniciando InfoMilo..."

	// MsgServerStarted is logged once the listener accepts connections.
	MsgServerStarted = "Servidor iniciado correctamente!"

	// MsgShuttingDown is logged when the interrupt signal is received.
	MsgShuttingDown = "Cerrando servidor..."

	// MsgServerClosed is logged after the listener closed and in-flight
	// requests finished.
	MsgServerClosed = "Servidor cerrado correctamente"

	// MsgProxyConfigured is shown when the proxy is enabled without a URL.
	MsgProxyConfigured = "Configurado"

	// MsgConfigLoadFailed is logged right before exiting with status 1.
	MsgConfigLoadFailed = "Error cargando configuración"
)
