package audio

import "os/exec"

// DetectBackend returns the first available audio tool.
// Priority: pacat > pw-cat > aplay > play (sox) > ffplay.
func DetectBackend() (*BackendConfig, error) {
	return detectWith(exec.LookPath)
}

func detectWith(lookPath func(string) (string, error)) (*BackendConfig, error) {
	for _, b := range backends {
		if path, err := lookPath(b.Name); err == nil {
			cfg := b
			cfg.Path = path
			return &cfg, nil
		}
	}
	return nil, ErrNoAudioBackend
}

var backends = []BackendConfig{
	{
		Type: BackendPulse,
		Name: "pacat",
		Args: []string{"--raw", "--format=s16le", "--rate=44100", "--channels=2", "--latency-msec=50", "--playback"},
	},
	{
		Type: BackendPipeWire,
		Name: "pw-cat",
		Args: []string{"--playback", "--format=s16", "--rate=44100", "--channels=2", "--latency=50ms", "-"},
	},
	{
		Type: BackendALSA,
		Name: "aplay",
		Args: []string{"-t", "raw", "-f", "S16_LE", "-r", "44100", "-c", "2", "-q"},
	},
	{
		Type: BackendSoX,
		Name: "play",
		Args: []string{"-t", "raw", "-e", "signed", "-b", "16", "-c", "2", "-r", "44100", "-", "-d", "-q"},
	},
	{
		Type: BackendFFplay,
		Name: "ffplay",
		Args: []string{
			"-nodisp", "-autoexit",
			"-f", "s16le", "-ac", "2", "-ar", "44100",
			"-probesize", "32", "-analyzeduration", "0",
			"-i", "pipe:0", "-loglevel", "quiet",
		},
	},
}
