package irc

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ServerURI is a parsed irc:// or ircs:// chat-server reference.
type ServerURI struct {
	Host     string
	Port     int
	TLS      bool
	User     string
	Password string
	Channel  string // optional initial channel, with sigil
}

func ParseServerURI(raw string) (ServerURI, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return ServerURI{}, fmt.Errorf("server URI: %w", err)
	}

	var s ServerURI
	switch u.Scheme {
	case "irc":
		s.Port = 6667
	case "ircs":
		s.Port = 6697
		s.TLS = true
	default:
		return ServerURI{}, fmt.Errorf("server URI %q: scheme must be irc or ircs", raw)
	}

	s.Host = u.Hostname()
	if s.Host == "" {
		return ServerURI{}, fmt.Errorf("server URI %q: missing host", raw)
	}
	if p := u.Port(); p != "" {
		s.Port, err = strconv.Atoi(p)
		if err != nil {
			return ServerURI{}, fmt.Errorf("server URI %q: bad port: %w", raw, err)
		}
	}

	if u.User != nil {
		s.User = u.User.Username()
		s.Password, _ = u.User.Password()
	}

	// "/room" means "#room"; a path that already carries a sigil is
	// taken as-is. An unescaped "#" in the URI lands in the fragment,
	// so irc://host/#room parses as a fragment of "room".
	ch := strings.Trim(u.Path, "/")
	if ch == "" && u.Fragment != "" {
		ch = "#" + u.Fragment
	}
	if ch != "" {
		if !strings.HasPrefix(ch, "#") && !strings.HasPrefix(ch, "&") {
			ch = "#" + ch
		}
		s.Channel = ch
	}
	return s, nil
}
