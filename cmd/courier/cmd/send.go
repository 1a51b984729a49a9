package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zostay/go-courier"
	"github.com/zostay/go-courier/compose"
)

var (
	sendCmd = &cobra.Command{
		Use:   "send",
		Short: "compose a message and deliver it via the profile's transport",
		RunE:  RunSend,
	}

	sendSubject      string
	sendFrom         string
	sendTo           []string
	sendCc           []string
	sendBcc          []string
	sendText         string
	sendHTML         string
	sendTextTemplate string
	sendHTMLTemplate string
	sendAttach       []string
	sendParams       []string
)

func init() {
	sendCmd.Flags().StringVar(&sendSubject, "subject", "", "message subject")
	sendCmd.Flags().StringVar(&sendFrom, "from", "", "sender address")
	sendCmd.Flags().StringArrayVar(&sendTo, "to", nil, "recipient address (repeatable)")
	sendCmd.Flags().StringArrayVar(&sendCc, "cc", nil, "carbon copy address (repeatable)")
	sendCmd.Flags().StringArrayVar(&sendBcc, "bcc", nil, "blind carbon copy address (repeatable)")
	sendCmd.Flags().StringVar(&sendText, "text", "", "inline text body")
	sendCmd.Flags().StringVar(&sendHTML, "html", "", "inline HTML body")
	sendCmd.Flags().StringVar(&sendTextTemplate, "text-template", "", "named text body template")
	sendCmd.Flags().StringVar(&sendHTMLTemplate, "html-template", "", "named HTML body template")
	sendCmd.Flags().StringArrayVar(&sendAttach, "attach", nil, "file to attach (repeatable)")
	sendCmd.Flags().StringArrayVar(&sendParams, "param", nil, "template variable as key=value (repeatable)")
}

// parseParams splits repeated key=value flags into a parameter map.
func parseParams(kvs []string) (map[string]any, error) {
	if len(kvs) == 0 {
		return nil, nil
	}

	params := make(map[string]any, len(kvs))
	for _, kv := range kvs {
		k, v, found := strings.Cut(kv, "=")
		if !found || k == "" {
			return nil, fmt.Errorf("malformed --param %q: want key=value", kv)
		}
		params[k] = v
	}
	return params, nil
}

// attachments maps each attached path to a file source named after its
// final path element.
func attachments(paths []string) map[string]compose.Source {
	if len(paths) == 0 {
		return nil
	}

	srcs := make(map[string]compose.Source, len(paths))
	for _, path := range paths {
		name := path
		if i := strings.LastIndexByte(path, '/'); i >= 0 {
			name = path[i+1:]
		}
		srcs[name] = compose.File(path)
	}
	return srcs
}

func RunSend(cmd *cobra.Command, _ []string) error {
	profile, err := loadProfile(profilePath)
	if err != nil {
		return err
	}

	sender, err := buildSender(cmd.Context(), profile)
	if err != nil {
		return err
	}

	params, err := parseParams(sendParams)
	if err != nil {
		return err
	}

	return sender.Send(cmd.Context(), courier.Message{
		Subject:      sendSubject,
		From:         sendFrom,
		To:           sendTo,
		Cc:           sendCc,
		Bcc:          sendBcc,
		Text:         sendText,
		HTML:         sendHTML,
		TextTemplate: sendTextTemplate,
		HTMLTemplate: sendHTMLTemplate,
		Params:       params,
		Attachments:  attachments(sendAttach),
	})
}
