package syncurl

import "testing"

func TestMapChannel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"#foo", "0foo"},
		{"&bar", "1bar"},
		{"plain", "plain"},
		{"#", "0"},
		{"##double", "0#double"}, // only the leading sigil is mapped
	}
	for _, tt := range tests {
		if got := MapChannel(tt.in); got != tt.want {
			t.Errorf("MapChannel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCompose(t *testing.T) {
	const endpoint = "https://sync.example/sse"

	tests := []struct {
		name    string
		url     string
		channel string
		want    string
	}{
		{
			name:    "bare url",
			url:     "https://x.example/deck",
			channel: "#room",
			want:    "https://x.example/deck?sync=https://sync.example/sse/0room",
		},
		{
			name:    "existing query",
			url:     "https://x.example/deck?theme=dark",
			channel: "#room",
			want:    "https://x.example/deck?theme=dark&sync=https://sync.example/sse/0room",
		},
		{
			name:    "fragment stays last",
			url:     "https://x.example/deck#slide3",
			channel: "#room",
			want:    "https://x.example/deck?sync=https://sync.example/sse/0room#slide3",
		},
		{
			name:    "query and fragment",
			url:     "https://x.example/deck?a=1#s2",
			channel: "#room",
			want:    "https://x.example/deck?a=1&sync=https://sync.example/sse/0room#s2",
		},
		{
			name:    "ampersand channel",
			url:     "https://x.example/deck",
			channel: "&local",
			want:    "https://x.example/deck?sync=https://sync.example/sse/1local",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compose(tt.url, endpoint, tt.channel); got != tt.want {
				t.Errorf("Compose(%q, %q, %q) = %q, want %q", tt.url, endpoint, tt.channel, got, tt.want)
			}
		})
	}
}
