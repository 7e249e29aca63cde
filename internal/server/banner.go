package server

import (
	"net"
	"strconv"

	"github.com/MKhiriev/infomilo/internal/app"
	"github.com/MKhiriev/infomilo/internal/logger"
	"github.com/MKhiriev/infomilo/models"
)

func logProfile(l *logger.Logger, p *models.Profile) {
	l.Info().
		Str("environment", p.Environment).
		Int("port", p.Development.Port).
		Str("host", p.Development.Host).
		Msg("Entorno: " + p.Environment)

	if p.Network.Proxy {
		proxy := p.Network.ProxyURL
		if proxy == "" {
			proxy = app.MsgProxyConfigured
		}
		l.Info().Str("proxy", proxy).Msg("Proxy: " + proxy)
	}

	if p.Development.DebugMode {
		l.Info().Bool("debug_mode", true).Msg("Modo debug: ACTIVADO")
	}
}

// logEndpoints prints the endpoint URLs for the address actually bound,
// which differs from the profile when port 0 was requested.
func logEndpoints(l *logger.Logger, p *models.Profile, addr net.Addr) {
	base := baseURL(p, addr)

	l.Info().Str("url", base).Msg(app.MsgServerStarted)
	l.Info().
		Str("home", base+"/").
		Str("config", base+"/api/config").
		Str("status", base+"/api/status").
		Msg("Endpoints disponibles")
	l.Info().
		Str("home", "infomilo switch home").
		Str("office", "infomilo switch office").
		Msg("Para cambiar configuración")
}

func baseURL(p *models.Profile, addr net.Addr) string {
	tcp, ok := addr.(*net.TCPAddr)
	if !ok {
		return p.BaseURL()
	}

	return "http://" + net.JoinHostPort(p.Development.Host, strconv.Itoa(tcp.Port))
}
