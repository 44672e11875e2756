package player

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if os.Getenv("GO_TEST_MODE_MPV") == "1" {
		time.Sleep(time.Minute)
		os.Exit(0)
	}

	os.Exit(m.Run())
}

// mockExecCommand replaces mpv with this test binary sleeping in TestMain.
func mockExecCommand(t *testing.T) *[]string {
	originalExecCommand := execCommand
	t.Cleanup(func() {
		execCommand = originalExecCommand
	})

	var args []string
	execCommand = func(command string, a ...string) *exec.Cmd {
		args = append([]string{command}, a...)
		cmd := exec.Command(os.Args[0], "-test.run=TestMain")
		cmd.Env = []string{"GO_TEST_MODE_MPV=1"}
		return cmd
	}
	return &args
}

// fakeMpv answers every command on the IPC socket. Commands listed in fail
// get an error reply instead of "success".
type fakeMpv struct {
	listener net.Listener
	mu       sync.Mutex
	commands [][]any
	fail     map[string]string
}

func startFakeMpv(t *testing.T, socketPath string) *fakeMpv {
	listener, err := net.Listen("unix", socketPath)
	require.NoError(t, err)

	f := &fakeMpv{listener: listener, fail: map[string]string{}}
	go f.serve()
	t.Cleanup(func() { listener.Close() })
	return f
}

func (f *fakeMpv) serve() {
	for {
		conn, err := f.listener.Accept()
		if err != nil {
			return
		}
		go f.handle(conn)
	}
}

func (f *fakeMpv) handle(conn net.Conn) {
	defer conn.Close()
	fmt.Fprintln(conn, `{"event":"playback-restart"}`)

	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		var cmd MpvCommand
		if err := json.Unmarshal(scanner.Bytes(), &cmd); err != nil {
			return
		}
		f.mu.Lock()
		f.commands = append(f.commands, cmd.Command)
		status := "success"
		if name, ok := cmd.Command[0].(string); ok {
			if failure, ok := f.fail[name]; ok {
				status = failure
			}
		}
		f.mu.Unlock()
		fmt.Fprintf(conn, `{"request_id":%d,"error":%q,"data":null}`+"\n", cmd.RequestID, status)
	}
}

func (f *fakeMpv) recorded() [][]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([][]any, len(f.commands))
	copy(out, f.commands)
	return out
}

func socketPath(t *testing.T) string {
	dir, err := os.MkdirTemp("", "mpv")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })
	return filepath.Join(dir, "mpv.sock")
}

func TestMpvPlayer_LoadPlayPause(t *testing.T) {
	args := mockExecCommand(t)
	path := socketPath(t)

	p := NewMpvPlayer(path)
	defer p.Close()
	mpv := startFakeMpv(t, path)

	require.NoError(t, p.SetVolume(0.5))
	require.NoError(t, p.SetSource("songs/better-day.mp3"))
	require.NoError(t, p.Play())
	require.NoError(t, p.Pause())
	require.NoError(t, p.SetVolume(1))

	assert.Contains(t, *args, "--input-ipc-server="+path)
	assert.Contains(t, *args, "--volume=50")

	expected := [][]any{
		{"set_property", "pause", true},
		{"loadfile", "songs/better-day.mp3", "replace"},
		{"set_property", "pause", false},
		{"set_property", "pause", true},
		{"set_property", "volume", float64(100)},
	}
	assert.Equal(t, expected, mpv.recorded())
}

func TestMpvPlayer_CommandFailure(t *testing.T) {
	mockExecCommand(t)
	path := socketPath(t)

	p := NewMpvPlayer(path)
	defer p.Close()
	mpv := startFakeMpv(t, path)
	mpv.fail["loadfile"] = "loading failed"

	err := p.SetSource("songs/missing.mp3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading failed")
}

func TestMpvPlayer_NotRunning(t *testing.T) {
	p := NewMpvPlayer(socketPath(t))

	assert.NoError(t, p.Pause(), "pausing an idle handle is a no-op")
	assert.NoError(t, p.SetVolume(0.3), "volume is kept until mpv starts")
	assert.Error(t, p.Play(), "nothing to play before a source is set")
	assert.NoError(t, p.Close())
}

func TestVolumePercent(t *testing.T) {
	assert.Equal(t, 0, volumePercent(0))
	assert.Equal(t, 50, volumePercent(0.5))
	assert.Equal(t, 100, volumePercent(1))
	assert.Equal(t, 29, volumePercent(0.29))
}
