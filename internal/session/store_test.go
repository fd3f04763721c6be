package session

import "testing"

const defaultURL = "https://sync.example/sse"

func TestEndpointDefaultsWithoutJoin(t *testing.T) {
	s := NewStore(defaultURL)
	if got := s.Endpoint("#room"); got != defaultURL {
		t.Errorf("Endpoint(#room) = %q, want default %q", got, defaultURL)
	}
}

func TestKeysAreCaseInsensitive(t *testing.T) {
	s := NewStore(defaultURL)
	s.SetEndpoint("#Room", "https://other.example/s")
	if got := s.Endpoint("#room"); got != "https://other.example/s" {
		t.Errorf("Endpoint(#room) = %q, want the endpoint set via #Room", got)
	}
}

func TestOnJoinResetsEndpointAndStatus(t *testing.T) {
	s := NewStore(defaultURL)
	s.SetEndpoint("#room", "https://other.example/s")
	s.SetStatus("#room", 200)

	s.OnJoin("#room")

	if got := s.Endpoint("#room"); got != defaultURL {
		t.Errorf("Endpoint after rejoin = %q, want default %q", got, defaultURL)
	}
	if _, ok := s.Status("#room"); ok {
		t.Error("Status after rejoin still set, want cleared")
	}
}

func TestSetEndpointClearsStatus(t *testing.T) {
	s := NewStore(defaultURL)
	s.SetStatus("#room", 404)
	s.SetEndpoint("#room", "https://other.example/s")
	if _, ok := s.Status("#room"); ok {
		t.Error("Status survived SetEndpoint, want cleared")
	}
}

func TestStatusRoundTrip(t *testing.T) {
	s := NewStore(defaultURL)
	if _, ok := s.Status("#room"); ok {
		t.Error("Status on fresh channel reported set")
	}
	s.SetStatus("#room", 200)
	if code, ok := s.Status("#room"); !ok || code != 200 {
		t.Errorf("Status = %d, %v, want 200, true", code, ok)
	}
	s.SetStatus("#room", 503)
	if code, _ := s.Status("#room"); code != 503 {
		t.Errorf("Status after overwrite = %d, want 503 (latest completion wins)", code)
	}
}

func TestDrop(t *testing.T) {
	s := NewStore(defaultURL)
	s.SetEndpoint("#room", "https://other.example/s")
	s.Drop("#room")
	if got := s.Endpoint("#room"); got != defaultURL {
		t.Errorf("Endpoint after Drop = %q, want default %q", got, defaultURL)
	}
}
