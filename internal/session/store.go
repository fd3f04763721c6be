package session

import "strings"

// Session is the per-channel state the dispatcher works against.
type Session struct {
	SyncEndpoint string
	LastStatus   *int
}

// Store keeps one Session per channel, keyed case-insensitively.
// It is not locked: every mutation happens on the bot's event loop,
// which processes one event at a time.
type Store struct {
	defaultEndpoint string
	sessions        map[string]*Session
}

func NewStore(defaultEndpoint string) *Store {
	return &Store{
		defaultEndpoint: defaultEndpoint,
		sessions:        make(map[string]*Session),
	}
}

func key(channel string) string {
	return strings.ToLower(channel)
}

func (s *Store) get(channel string) *Session {
	sess, ok := s.sessions[key(channel)]
	if !ok {
		sess = &Session{SyncEndpoint: s.defaultEndpoint}
		s.sessions[key(channel)] = sess
	}
	return sess
}

// OnJoin resets the channel to the configured default endpoint. Called
// every time the bot (re)joins, so a rejoin discards any `use` override.
func (s *Store) OnJoin(channel string) {
	s.sessions[key(channel)] = &Session{SyncEndpoint: s.defaultEndpoint}
}

func (s *Store) Endpoint(channel string) string {
	return s.get(channel).SyncEndpoint
}

// SetEndpoint overrides the sync endpoint for one channel. A new
// endpoint invalidates whatever delivery status was recorded against
// the old one.
func (s *Store) SetEndpoint(channel, url string) {
	sess := s.get(channel)
	sess.SyncEndpoint = url
	sess.LastStatus = nil
}

func (s *Store) SetStatus(channel string, code int) {
	s.get(channel).LastStatus = &code
}

func (s *Store) Status(channel string) (int, bool) {
	sess, ok := s.sessions[key(channel)]
	if !ok || sess.LastStatus == nil {
		return 0, false
	}
	return *sess.LastStatus, true
}

func (s *Store) ClearStatus(channel string) {
	if sess, ok := s.sessions[key(channel)]; ok {
		sess.LastStatus = nil
	}
}

// Drop forgets a channel entirely, used when the bot parts.
func (s *Store) Drop(channel string) {
	delete(s.sessions, key(channel))
}
