package routes

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/mbolis/reward-web/httpx"
	"github.com/mbolis/reward-web/settings"
	"github.com/stretchr/testify/require"
)

func TestSettings_DefaultsAndUpdate(t *testing.T) {
	c, base := newBrowser(t, newFakeBackend())

	status, body := get(t, c, base+"/settings")
	require.Equal(t, http.StatusOK, status)
	var got settings.Settings
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	require.Equal(t, settings.Settings{MusicVolume: settings.DefaultMusicVolume}, got)

	status, _ = send(t, c, http.MethodPut, base+"/settings", `{"sound_muted": true, "music_volume": 25}`)
	require.Equal(t, http.StatusOK, status)

	_, body = get(t, c, base+"/settings")
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	require.Equal(t, settings.Settings{SoundMuted: true, MusicVolume: 25}, got)
}

func TestSettings_RejectsOutOfRangeVolume(t *testing.T) {
	c, base := newBrowser(t, newFakeBackend())

	status, body := send(t, c, http.MethodPut, base+"/settings", `{"music_volume": 150}`)
	require.Equal(t, http.StatusUnprocessableEntity, status)

	var errBody httpx.ErrorBody
	require.NoError(t, json.Unmarshal([]byte(body), &errBody))
	require.Equal(t, "VALIDATION_FAILED", errBody.Code)
	require.Equal(t, map[string]string{"music_volume": "lte"}, errBody.Fields)
}
