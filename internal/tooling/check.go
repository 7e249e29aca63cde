package tooling

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/MKhiriev/infomilo/internal/config"
	"github.com/MKhiriev/infomilo/internal/profile"
	"github.com/MKhiriev/infomilo/models"
	"github.com/fatih/color"
	"github.com/rodaine/table"
)

// Check is a named test over a project tree. Run returns nil on success.
type Check struct {
	Name string
	Run  func() error
}

// CheckResult is the outcome of one Check.
type CheckResult struct {
	Name string
	Err  error
}

func (r CheckResult) Passed() bool {
	return r.Err == nil
}

// DefaultChecks verifies that the profiles the server and the switch
// command rely on exist, and that the fallback profile is loadable.
func DefaultChecks(paths config.Paths) []Check {
	return []Check{
		{Name: "Configuración por defecto", Run: fileExists(paths.DefaultPath())},
		{Name: "Configuración de casa", Run: fileExists(profile.PathOf(paths, models.EnvironmentHome))},
		{Name: "Configuración de oficina", Run: fileExists(profile.PathOf(paths, models.EnvironmentOffice))},
		{Name: "Configuración por defecto válida", Run: loads(paths.DefaultPath())},
	}
}

func fileExists(path string) func() error {
	return func() error {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrFileMissing, path)
		}
		if info.IsDir() {
			return fmt.Errorf("%w: %s is a directory", ErrFileMissing, path)
		}
		return nil
	}
}

func loads(path string) func() error {
	return func() error {
		_, err := profile.NewFileSource(profile.SourceDefault, path).Load()
		return err
	}
}

// RunChecks runs every check in order. A panicking check counts as failed.
func RunChecks(checks []Check) []CheckResult {
	results := make([]CheckResult, 0, len(checks))
	for _, c := range checks {
		results = append(results, CheckResult{Name: c.Name, Err: runCheck(c)})
	}
	return results
}

func runCheck(c Check) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return c.Run()
}

// PrintReport writes the results as a table followed by the totals and
// returns the number of failed checks.
func PrintReport(w io.Writer, results []CheckResult) int {
	headerFmt := color.New(color.FgGreen, color.Underline).SprintfFunc()

	tbl := table.New("#", "Test", "Resultado", "Detalle").WithWriter(w)
	tbl.WithHeaderFormatter(headerFmt)

	failed := 0
	for i, r := range results {
		outcome, detail := "✅ OK", ""
		if !r.Passed() {
			failed++
			outcome, detail = "❌ FALLO", r.Err.Error()
		}
		tbl.AddRow(strconv.Itoa(i+1), r.Name, outcome, detail)
	}
	tbl.Print()

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Resultados:")
	fmt.Fprintf(w, "   Pasados: %d\n", len(results)-failed)
	fmt.Fprintf(w, "   Fallidos: %d\n", failed)
	fmt.Fprintf(w, "   Total: %d\n", len(results))
	if failed == 0 {
		fmt.Fprintln(w, "¡Todos los tests pasaron!")
	} else {
		fmt.Fprintln(w, "Algunos tests fallaron")
	}

	return failed
}
