package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/qrforge/qrforge/internal/adapters/storage"
	"github.com/qrforge/qrforge/internal/domain/preset"
)

// emitFunc delivers a finished payload string to the user.
type emitFunc func(payload string) error

// newPresetCmd exposes the payload builders. Each subcommand prints the
// payload string; pipe it into generate to get an image, or collect payloads
// into a batch list with --append-to.
func newPresetCmd() *cobra.Command {
	var appendTo string

	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Build QR payload strings for common content types",
	}
	cmd.PersistentFlags().StringVar(&appendTo, "append-to", "", "Also append the payload to a batch list file")

	emit := func(payload string) error {
		fmt.Println(payload)
		if appendTo == "" {
			return nil
		}
		var items []string
		if _, err := os.Stat(appendTo); err == nil {
			if items, err = storage.LoadList(appendTo); err != nil {
				return err
			}
		}
		return storage.SaveList(appendTo, append(items, payload))
	}

	cmd.AddCommand(
		newWiFiCmd(emit),
		newEmailCmd(emit),
		newPhoneCmd(emit),
		newSMSCmd(emit),
		newWebsiteCmd(emit),
		newVCardCmd(emit),
		newGeoCmd(emit),
	)
	return cmd
}

func newWiFiCmd(emit emitFunc) *cobra.Command {
	var (
		password string
		security string
		hidden   bool
	)
	cmd := &cobra.Command{
		Use:   "wifi [ssid]",
		Short: "WiFi network payload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := preset.WiFi(args[0], password, security, hidden)
			if err != nil {
				return err
			}
			return emit(payload)
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "Network password (empty downgrades security to nopass)")
	cmd.Flags().StringVar(&security, "security", "WPA", "Security type: WPA, WEP or nopass")
	cmd.Flags().BoolVar(&hidden, "hidden", false, "Hidden network")
	return cmd
}

func newEmailCmd(emit emitFunc) *cobra.Command {
	var subject, body string
	cmd := &cobra.Command{
		Use:   "email [address]",
		Short: "mailto: payload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := preset.Email(args[0], subject, body)
			if err != nil {
				return err
			}
			return emit(payload)
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "", "Mail subject")
	cmd.Flags().StringVar(&body, "body", "", "Mail body")
	return cmd
}

func newPhoneCmd(emit emitFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "phone [number]",
		Short: "tel: payload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := preset.Phone(args[0])
			if err != nil {
				return err
			}
			return emit(payload)
		},
	}
}

func newSMSCmd(emit emitFunc) *cobra.Command {
	var message string
	cmd := &cobra.Command{
		Use:   "sms [number]",
		Short: "sms: payload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := preset.SMS(args[0], message)
			if err != nil {
				return err
			}
			return emit(payload)
		},
	}
	cmd.Flags().StringVarP(&message, "message", "m", "", "Message body")
	return cmd
}

func newWebsiteCmd(emit emitFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "website [url]",
		Short: "Website payload (https:// added when no scheme is present)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := preset.Website(args[0])
			if err != nil {
				return err
			}
			return emit(payload)
		},
	}
}

func newVCardCmd(emit emitFunc) *cobra.Command {
	var phone, email, org, title string
	cmd := &cobra.Command{
		Use:   "vcard [name]",
		Short: "vCard 3.0 payload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := preset.VCard(args[0], phone, email, org, title)
			if err != nil {
				return err
			}
			return emit(payload)
		},
	}
	cmd.Flags().StringVar(&phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&org, "org", "", "Organization")
	cmd.Flags().StringVar(&title, "title", "", "Job title")
	return cmd
}

func newGeoCmd(emit emitFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "geo [latitude] [longitude]",
		Short: "geo: payload",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lat, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid latitude %q", args[0])
			}
			lon, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid longitude %q", args[1])
			}
			return emit(preset.Geo(lat, lon))
		},
	}
}
