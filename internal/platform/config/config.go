// internal/platform/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"domainsearch/internal/core/domain"
	"domainsearch/internal/platform/errors"
	"domainsearch/internal/platform/logx"
	hostcheck "domainsearch/internal/platform/validator"
)

// EnvPrefix prefijo de todas las variables de entorno.
const EnvPrefix = "DOMAINSEARCH_"

type Config struct {
	// Entrada
	Base      string `yaml:"-"`
	InputFile string `yaml:"input,omitempty"`
	Update    bool   `yaml:"-"`

	// Probes
	CheckSite bool   `yaml:"check_site"`
	TimeoutS  int    `yaml:"timeout" validate:"gt=0"`
	Workers   int    `yaml:"workers" validate:"gt=0,lte=1000"`
	Resolver  string `yaml:"resolver,omitempty" validate:"omitempty,hostport"`

	// TLDs
	TLDFile string `yaml:"tlds" validate:"required"`
	TLDURL  string `yaml:"tld_url" validate:"required,url"`

	// Salidas
	OutputFile  string `yaml:"output,omitempty"`
	JSONReport  string `yaml:"json,omitempty"`
	MetricsAddr string `yaml:"metrics_addr,omitempty" validate:"omitempty,hostname_port"`
	Format      string `yaml:"format" validate:"oneof=pretty text json"`
	Quiet       bool   `yaml:"quiet"`

	// Logging
	Verbose  bool   `yaml:"-"`
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`

	ConfigFile   string `yaml:"-"`
	PrintVersion bool   `yaml:"-"`
	PrintHelp    bool   `yaml:"-"`
}

// DefaultConfig retorna una configuración por defecto.
func DefaultConfig() Config {
	return Config{
		TimeoutS: 3,
		Workers:  20,
		TLDFile:  "tlds.txt",
		TLDURL:   "https://data.iana.org/TLD/tlds-alpha-by-domain.txt",
		Format:   "pretty",
		LogLevel: "warn",
	}
}

// Load inicializa la configuración: defaults -> archivo YAML -> ENV -> FLAGS
// (cada capa tiene prioridad sobre la anterior). args no incluye el nombre
// del programa.
func Load(args []string) (Config, error) {
	cfg := DefaultConfig()

	path := configPath(args)
	if path != "" {
		if err := loadFromFile(&cfg, path); err != nil {
			return cfg, err
		}
		cfg.ConfigFile = path
	}

	loadFromEnv(&cfg)

	if err := loadFromFlags(&cfg, args); err != nil {
		return cfg, err
	}

	normalize(&cfg)
	return cfg, nil
}

// configPath busca --config en args y, si no está, DOMAINSEARCH_CONFIG.
func configPath(args []string) string {
	for i, a := range args {
		if a == "--" {
			break
		}
		if v, ok := strings.CutPrefix(a, "--config="); ok {
			return v
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return getenv(EnvPrefix+"CONFIG", "")
}

// loadFromFile aplica un archivo YAML sobre cfg. Solo pisa las claves presentes.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(errors.ErrInvalidInput, "config file %s: %v", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.Wrapf(errors.ErrInvalidInput, "config file %s: %v", path, err)
	}
	return nil
}

// loadFromEnv carga configuración desde variables de entorno.
func loadFromEnv(cfg *Config) {
	if v := getenv(EnvPrefix+"WORKERS", ""); v != "" {
		cfg.Workers = parseInt(v, cfg.Workers)
	}
	if v := getenv(EnvPrefix+"TIMEOUT", ""); v != "" {
		cfg.TimeoutS = parseInt(v, cfg.TimeoutS)
	}
	if v := getenv(EnvPrefix+"CHECK_SITE", ""); v != "" {
		cfg.CheckSite = parseBool(v)
	}
	if v := getenv(EnvPrefix+"RESOLVER", ""); v != "" {
		cfg.Resolver = v
	}
	if v := getenv(EnvPrefix+"TLDS", ""); v != "" {
		cfg.TLDFile = v
	}
	if v := getenv(EnvPrefix+"TLD_URL", ""); v != "" {
		cfg.TLDURL = v
	}
	if v := getenv(EnvPrefix+"METRICS_ADDR", ""); v != "" {
		cfg.MetricsAddr = v
	}
	if v := getenv(EnvPrefix+"FORMAT", ""); v != "" {
		cfg.Format = v
	}
	if v := getenv(logx.EnvLevel, ""); v != "" {
		cfg.LogLevel = v
	}
}

// loadFromFlags parsea flags de CLI.
func loadFromFlags(cfg *Config, args []string) error {
	fs := pflag.NewFlagSet("domainsearch", pflag.ContinueOnError)
	fs.Usage = func() {}
	fs.SortFlags = false

	fs.StringVarP(&cfg.InputFile, "input", "i", cfg.InputFile, "Load domains from a file instead of searching")
	fs.StringVarP(&cfg.OutputFile, "output", "o", cfg.OutputFile, "Save found domains to a file")
	fs.BoolVarP(&cfg.CheckSite, "check-site", "c", cfg.CheckSite, "Check if port 443 (HTTPS) is responding")
	fs.IntVarP(&cfg.TimeoutS, "timeout", "T", cfg.TimeoutS, "Timeout in seconds for each probe")
	fs.IntVarP(&cfg.Workers, "workers", "w", cfg.Workers, "Number of concurrent probes")
	fs.BoolVarP(&cfg.Update, "update", "u", false, "Update the TLD list from IANA and exit")

	fs.StringVar(&cfg.TLDFile, "tlds", cfg.TLDFile, "Path of the local TLD list")
	fs.StringVar(&cfg.TLDURL, "tld-url", cfg.TLDURL, "URL of the IANA TLD list")
	fs.StringVar(&cfg.Resolver, "resolver", cfg.Resolver, "DNS server host:port (default: system resolver)")

	fs.StringVar(&cfg.JSONReport, "json", cfg.JSONReport, "Write a JSON report to this path (\"-\" = stdout)")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "Serve Prometheus metrics on this address")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "Terminal output: pretty, text or json")
	fs.BoolVarP(&cfg.Quiet, "quiet", "q", cfg.Quiet, "No terminal output besides errors")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Debug logging")

	fs.StringVar(&cfg.ConfigFile, "config", cfg.ConfigFile, "YAML config file")
	fs.BoolVar(&cfg.PrintVersion, "version", false, "Print version and exit")
	fs.BoolVarP(&cfg.PrintHelp, "help", "h", false, "Show this help message")

	if err := fs.Parse(args); err != nil {
		return errors.Wrap(errors.ErrInvalidInput, err.Error())
	}

	switch rest := fs.Args(); len(rest) {
	case 0:
	case 1:
		cfg.Base = rest[0]
	default:
		return errors.Wrapf(errors.ErrInvalidInput, "unexpected arguments: %s", strings.Join(rest[1:], " "))
	}

	return nil
}

func normalize(c *Config) {
	c.Base = strings.TrimSpace(c.Base)
	c.InputFile = strings.TrimSpace(c.InputFile)
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.Verbose {
		c.LogLevel = "debug"
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("hostport", func(fl validator.FieldLevel) bool {
		return hostcheck.IsHostPort(fl.Field().String())
	})
	return v
}

// Validate verifica la configuración antes de ejecutar nada.
// Los errores de timeout son ErrInvalidTimeout; el resto ErrInvalidInput o
// ErrMissingInput.
func (c Config) Validate() error {
	if c.PrintHelp || c.PrintVersion {
		return nil
	}

	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			if fe.Field() == "TimeoutS" {
				return errors.Wrapf(errors.ErrInvalidTimeout, "got %d", c.TimeoutS)
			}
			return errors.Wrapf(errors.ErrInvalidInput, "%s: failed %q (value %v)", fe.Field(), fe.Tag(), fe.Value())
		}
		return errors.Wrap(errors.ErrInvalidInput, err.Error())
	}

	if c.Update {
		return nil
	}

	switch {
	case c.Base != "" && c.InputFile != "":
		return errors.Wrap(errors.ErrInvalidInput, "use either a base label or --input, not both")
	case c.Base == "" && c.InputFile == "":
		return errors.Wrap(errors.ErrMissingInput, "a base label or --input file is required")
	case c.InputFile != "" && !c.CheckSite:
		return errors.Wrap(errors.ErrMissingInput, "--input requires --check-site")
	}

	return nil
}

// Mode retorna el modo de ejecución según la entrada configurada.
func (c Config) Mode() domain.RunMode {
	if c.InputFile != "" {
		return domain.RunModeInput
	}
	return domain.RunModeSearch
}

// Timeout devuelve el timeout por probe como time.Duration.
func (c Config) Timeout() time.Duration {
	if c.TimeoutS <= 0 {
		return 0
	}
	return time.Duration(c.TimeoutS) * time.Second
}

// Level retorna el nivel de log configurado.
func (c Config) Level() logx.Level {
	return logx.ParseLevel(c.LogLevel)
}

// ResolverName describe el backend DNS para el reporte.
func (c Config) ResolverName() string {
	if c.Resolver == "" {
		return "system"
	}
	return c.Resolver
}

// ToYAML serializa la configuración persistible (útil para debugging y para
// generar un archivo --config).
func (c Config) ToYAML() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// String retorna un resumen de una línea.
func (c Config) String() string {
	return fmt.Sprintf("Config{mode=%s, workers=%d, timeout=%ds, resolver=%s, check_site=%t}",
		c.Mode(), c.Workers, c.TimeoutS, c.ResolverName(), c.CheckSite)
}

// Helpers

func getenv(k, def string) string {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		return v
	}
	return def
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "t", "true", "y", "yes", "on":
		return true
	default:
		return false
	}
}

func parseInt(v string, def int) int {
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return i
}
