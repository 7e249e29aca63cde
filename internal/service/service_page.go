package service

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/MKhiriev/infomilo/internal/app"
	"github.com/MKhiriev/infomilo/internal/logger"
)

// LocalTimestampLayout is the day-first layout used in the page footer.
const LocalTimestampLayout = "02/01/2006, 15:04:05"

//go:embed templates/*.tmpl
var templatesFS embed.FS

var homeTemplate = template.Must(template.ParseFS(templatesFS, "templates/home.html.tmpl"))

type homePage struct {
	Icon        string
	Environment string
	Description string
	Port        int
	Host        string
	Proxy       bool
	Debug       bool
	Timestamp   string
}

type pageService struct {
	appCtx *app.Context
	tmpl   *template.Template
}

// NewPageService returns a PageService rendering the embedded home page.
func NewPageService(appCtx *app.Context) (PageService, error) {
	if appCtx == nil || appCtx.Profile == nil {
		return nil, ErrNoProfileLoaded
	}

	return &pageService{
		appCtx: appCtx,
		tmpl:   homeTemplate,
	}, nil
}

func (s *pageService) RenderHome(ctx context.Context) ([]byte, error) {
	p := s.appCtx.Profile

	data := homePage{
		Icon:        p.Icon(),
		Environment: strings.ToUpper(p.Environment),
		Description: p.Description,
		Port:        p.Development.Port,
		Host:        p.Development.Host,
		Proxy:       p.Network.Proxy,
		Debug:       p.Development.DebugMode,
		Timestamp:   s.appCtx.Now().Local().Format(LocalTimestampLayout),
	}

	var buf bytes.Buffer
	if err := s.tmpl.Execute(&buf, data); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "pageService.RenderHome").Msg("error executing home template")
		return nil, fmt.Errorf("%w: %w", ErrRenderingPage, err)
	}

	return buf.Bytes(), nil
}
