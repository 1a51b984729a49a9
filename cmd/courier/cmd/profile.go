package cmd

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zostay/go-courier"
	"github.com/zostay/go-courier/templates"
	"github.com/zostay/go-courier/transport"
	"github.com/zostay/go-courier/transport/ses"
	"github.com/zostay/go-courier/transport/smtp"
	"github.com/zostay/go-courier/transport/stdout"
)

// Profile is the YAML delivery profile: which transport to use, how to reach
// it, and the defaults applied to every message sent with it.
type Profile struct {
	// Transport selects the delivery backend: smtp, ses, or stdout. Empty
	// means stdout.
	Transport string `yaml:"transport"`

	SMTP struct {
		Host        string `yaml:"host"`
		Port        int    `yaml:"port"`
		Username    string `yaml:"username"`
		Password    string `yaml:"password"`
		ImplicitTLS bool   `yaml:"implicit_tls"`
	} `yaml:"smtp"`

	SES struct {
		Region          string `yaml:"region"`
		AccessKeyID     string `yaml:"access_key_id"`
		SecretAccessKey string `yaml:"secret_access_key"`
	} `yaml:"ses"`

	Templates struct {
		// Dir is the directory templates are loaded from.
		Dir string `yaml:"dir"`

		// Engine selects the template language: liquid or gotemplate.
		// Empty means liquid.
		Engine string `yaml:"engine"`
	} `yaml:"templates"`

	Defaults struct {
		From string   `yaml:"from"`
		To   []string `yaml:"to"`
		Cc   []string `yaml:"cc"`
		Bcc  []string `yaml:"bcc"`
	} `yaml:"defaults"`
}

// loadProfile reads the profile at path. An empty path yields the zero
// profile, which sends to standard output.
func loadProfile(path string) (*Profile, error) {
	p := &Profile{}
	if path == "" {
		return p, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}

	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("parsing profile %s: %w", path, err)
	}

	return p, nil
}

// buildTransport constructs the delivery backend the profile selects.
func buildTransport(ctx context.Context, p *Profile) (transport.Transport, error) {
	switch p.Transport {
	case "", "stdout":
		return stdout.New(), nil
	case "smtp":
		return smtp.New(smtp.Config{
			Host:        p.SMTP.Host,
			Port:        p.SMTP.Port,
			Username:    p.SMTP.Username,
			Password:    p.SMTP.Password,
			ImplicitTLS: p.SMTP.ImplicitTLS,
		}), nil
	case "ses":
		return ses.New(ctx, ses.Config{
			Region:          p.SES.Region,
			AccessKeyID:     p.SES.AccessKeyID,
			SecretAccessKey: p.SES.SecretAccessKey,
		})
	default:
		return nil, fmt.Errorf("unknown transport %q", p.Transport)
	}
}

// buildStore constructs the template store the profile selects, or nil when
// no template directory is configured.
func buildStore(p *Profile) (templates.Store, error) {
	if p.Templates.Dir == "" {
		return nil, nil
	}

	fsys := os.DirFS(p.Templates.Dir)
	switch p.Templates.Engine {
	case "", "liquid":
		return templates.NewLiquidStore(fsys), nil
	case "gotemplate":
		return templates.NewGoStore(fsys), nil
	default:
		return nil, fmt.Errorf("unknown template engine %q", p.Templates.Engine)
	}
}

// buildSender assembles a Sender from the profile.
func buildSender(ctx context.Context, p *Profile) (*courier.Sender, error) {
	t, err := buildTransport(ctx, p)
	if err != nil {
		return nil, err
	}

	opts := []courier.Option{courier.WithTransport(t)}

	store, err := buildStore(p)
	if err != nil {
		return nil, err
	}
	if store != nil {
		opts = append(opts, courier.WithTemplates(store))
	}

	s := courier.NewSender(opts...)
	s.SetDefaults(courier.Message{
		From: p.Defaults.From,
		To:   p.Defaults.To,
		Cc:   p.Defaults.Cc,
		Bcc:  p.Defaults.Bcc,
	})

	return s, nil
}
