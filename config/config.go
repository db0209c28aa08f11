package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr        string
	APIUrl      string
	APITimeout  time.Duration
	DBUrl       string
	TokenSecret string
	VisitorTTL  time.Duration
	Debug       bool
}

// fileConfig mirrors the command line flags. Values from the file only apply
// to flags that were not given explicitly.
type fileConfig struct {
	Host        *string `yaml:"host"`
	Port        *uint   `yaml:"port"`
	APIUrl      *string `yaml:"api_url"`
	APITimeout  *string `yaml:"api_timeout"`
	DBUrl       *string `yaml:"db_url"`
	TokenSecret *string `yaml:"token_secret"`
	VisitorDays *uint   `yaml:"visitor_days"`
	Debug       *bool   `yaml:"debug"`
}

func ParseFlags() (Config, error) {
	return Parse(os.Args[0], os.Args[1:])
}

func Parse(name string, args []string) (cfg Config, err error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	var host string
	fs.StringVar(&host, "host", "0.0.0.0", "listen host name")
	var port uint
	fs.UintVar(&port, "port", 80, "listen port number")
	fs.StringVar(&cfg.APIUrl, "api-url", "", "base URL of the rewards backend API")
	var timeout string
	fs.StringVar(&timeout, "api-timeout", "0s", "timeout of backend calls (0 keeps the HTTP client default)")
	fs.StringVar(&cfg.DBUrl, "db-url", "rewardweb.sqlite", "path to SQLite3 DB file")
	fs.StringVar(&cfg.TokenSecret, "token-secret", "", "secret key for signing visitor cookies")
	var visitorDays uint
	fs.UintVar(&visitorDays, "visitor-days", 365, "visitor cookie lifetime in days")
	fs.BoolVar(&cfg.Debug, "debug", false, "log at DEBUG level")
	var configPath string
	fs.StringVar(&configPath, "config", "", "optional YAML file with defaults for the flags above")

	if err = fs.Parse(args); err != nil {
		return
	}

	if configPath != "" {
		var fc fileConfig
		fc, err = readFile(configPath)
		if err != nil {
			return
		}

		set := map[string]bool{}
		fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

		applyString(set, "host", fc.Host, &host)
		applyString(set, "api-url", fc.APIUrl, &cfg.APIUrl)
		applyString(set, "api-timeout", fc.APITimeout, &timeout)
		applyString(set, "db-url", fc.DBUrl, &cfg.DBUrl)
		applyString(set, "token-secret", fc.TokenSecret, &cfg.TokenSecret)
		if fc.Port != nil && !set["port"] {
			port = *fc.Port
		}
		if fc.VisitorDays != nil && !set["visitor-days"] {
			visitorDays = *fc.VisitorDays
		}
		if fc.Debug != nil && !set["debug"] {
			cfg.Debug = *fc.Debug
		}
	}

	cfg.Addr = net.JoinHostPort(host, strconv.Itoa(int(port)))
	cfg.VisitorTTL = time.Duration(visitorDays) * 24 * time.Hour
	cfg.APIUrl = strings.TrimRight(cfg.APIUrl, "/")

	var errs *multierror.Error
	if cfg.APITimeout, err = time.ParseDuration(timeout); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("invalid parameter -api-timeout: %w", err))
	}
	if cfg.APIUrl == "" {
		errs = multierror.Append(errs, errors.New("missing parameter -api-url"))
	}
	if cfg.TokenSecret == "" {
		errs = multierror.Append(errs, errors.New("missing parameter -token-secret"))
	}
	err = errs.ErrorOrNil()

	return
}

func readFile(path string) (fc fileConfig, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return
	}
	err = yaml.Unmarshal(b, &fc)
	return
}

func applyString(set map[string]bool, name string, from *string, to *string) {
	if from != nil && !set[name] {
		*to = *from
	}
}

func (cfg Config) Url() (url string) {
	url = cfg.Addr
	url = regexp.MustCompile(`^0.0.0.0`).ReplaceAllString(url, "localhost")
	url = "http://" + url
	return
}
