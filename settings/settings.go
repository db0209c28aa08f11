// Package settings holds the small set of UI flags a visitor carries between
// pages. Persistence is left to a Store.
package settings

import (
	"context"
	"strconv"
)

const (
	KeyGuideSeen       = "guide_seen"
	KeySoundMuted      = "sound_muted"
	KeyMusicVolume     = "music_volume"
	KeyStreakModalSeen = "streak_modal_seen"
)

const DefaultMusicVolume = 70

// Store reads and writes raw values. Owners are opaque: a visitor id for
// durable flags, a browser session id for per-session ones.
type Store interface {
	Load(ctx context.Context, owner string) (map[string]string, error)
	Save(ctx context.Context, owner string, values map[string]string) error
}

// Settings are the durable, per-visitor flags.
type Settings struct {
	GuideSeen   bool `json:"guide_seen"`
	SoundMuted  bool `json:"sound_muted"`
	MusicVolume int  `json:"music_volume"`
}

// Patch is a partial update; nil fields are left alone.
type Patch struct {
	GuideSeen   *bool `json:"guide_seen"`
	SoundMuted  *bool `json:"sound_muted"`
	MusicVolume *int  `json:"music_volume" validate:"omitempty,gte=0,lte=100"`
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) Get(ctx context.Context, visitor string) (Settings, error) {
	values, err := s.store.Load(ctx, visitor)
	if err != nil {
		return Settings{}, err
	}
	return decode(values), nil
}

func (s *Service) Update(ctx context.Context, visitor string, p Patch) (Settings, error) {
	values := map[string]string{}
	if p.GuideSeen != nil {
		values[KeyGuideSeen] = strconv.FormatBool(*p.GuideSeen)
	}
	if p.SoundMuted != nil {
		values[KeySoundMuted] = strconv.FormatBool(*p.SoundMuted)
	}
	if p.MusicVolume != nil {
		values[KeyMusicVolume] = strconv.Itoa(*p.MusicVolume)
	}
	if len(values) > 0 {
		if err := s.store.Save(ctx, visitor, values); err != nil {
			return Settings{}, err
		}
	}
	return s.Get(ctx, visitor)
}

// StreakModalSeen reports whether the attendance modal was already shown in
// the browser session.
func (s *Service) StreakModalSeen(ctx context.Context, session string) (bool, error) {
	values, err := s.store.Load(ctx, session)
	if err != nil {
		return false, err
	}
	seen, _ := strconv.ParseBool(values[KeyStreakModalSeen])
	return seen, nil
}

func (s *Service) MarkStreakModalSeen(ctx context.Context, session string) error {
	return s.store.Save(ctx, session, map[string]string{KeyStreakModalSeen: "true"})
}

func decode(values map[string]string) Settings {
	st := Settings{MusicVolume: DefaultMusicVolume}
	st.GuideSeen, _ = strconv.ParseBool(values[KeyGuideSeen])
	st.SoundMuted, _ = strconv.ParseBool(values[KeySoundMuted])
	if v, err := strconv.Atoi(values[KeyMusicVolume]); err == nil {
		st.MusicVolume = v
	}
	return st
}
