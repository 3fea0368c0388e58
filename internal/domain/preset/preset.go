// Package preset builds QR payload strings for the standard content schemes.
// All builders are pure: they format and validate, nothing else.
package preset

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/qrforge/qrforge/internal/domain/common/errorz"
)

var nonPhoneChars = regexp.MustCompile(`[^0-9+]`)

// WiFi returns a WIFI: network payload. When the password is empty the
// security field downgrades to "nopass" regardless of the requested security.
func WiFi(ssid, password, security string, hidden bool) (string, error) {
	if ssid == "" {
		return "", errorz.EmptySSID
	}
	sec := security
	if password == "" {
		sec = "nopass"
	}
	return fmt.Sprintf("WIFI:T:%s;S:%s;P:%s;H:%s;;", sec, ssid, password, strconv.FormatBool(hidden)), nil
}

// Email returns a mailto: payload with percent-encoded subject and body.
func Email(address, subject, body string) (string, error) {
	if address == "" {
		return "", errorz.EmptyAddress
	}
	var params []string
	if subject != "" {
		params = append(params, "subject="+escape(subject))
	}
	if body != "" {
		params = append(params, "body="+escape(body))
	}
	query := ""
	if len(params) > 0 {
		query = "?" + strings.Join(params, "&")
	}
	return "mailto:" + address + query, nil
}

// Phone returns a tel: payload with everything except digits and '+' stripped.
func Phone(number string) (string, error) {
	if number == "" {
		return "", errorz.EmptyNumber
	}
	return "tel:" + nonPhoneChars.ReplaceAllString(number, ""), nil
}

// SMS returns an sms: payload, cleaned like Phone, with an optional body.
func SMS(number, message string) (string, error) {
	if number == "" {
		return "", errorz.EmptyNumber
	}
	clean := nonPhoneChars.ReplaceAllString(number, "")
	if message != "" {
		return "sms:" + clean + "?body=" + escape(message), nil
	}
	return "sms:" + clean, nil
}

// Website returns the URL unchanged when it already carries an http(s)
// scheme, otherwise prefixed with https://.
func Website(rawURL string) (string, error) {
	if rawURL == "" {
		return "", errorz.EmptyURL
	}
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		rawURL = "https://" + rawURL
	}
	return rawURL, nil
}

// VCard returns a version 3.0 vCard with optional TEL/EMAIL/ORG/TITLE lines.
func VCard(name, phone, email, org, title string) (string, error) {
	if name == "" {
		return "", errorz.EmptyName
	}
	lines := []string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"FN:" + name,
	}
	if phone != "" {
		lines = append(lines, "TEL:"+phone)
	}
	if email != "" {
		lines = append(lines, "EMAIL:"+email)
	}
	if org != "" {
		lines = append(lines, "ORG:"+org)
	}
	if title != "" {
		lines = append(lines, "TITLE:"+title)
	}
	lines = append(lines, "END:VCARD")
	return strings.Join(lines, "\n"), nil
}

// Geo returns a geo: payload. Range constraints are the caller's concern.
func Geo(latitude, longitude float64) string {
	return fmt.Sprintf("geo:%v,%v", latitude, longitude)
}

// escape percent-encodes s with spaces as %20 rather than '+'.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
