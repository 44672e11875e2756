package player

import (
	"bufio"
	"encoding/json"
	"fmt"
	"math"
	"net"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/gabrielcapilla/triplay/internal/logger"
	"github.com/gabrielcapilla/triplay/internal/ports"

	"github.com/buger/jsonparser"
)

const (
	socketCheckRetries  = 20
	socketCheckInterval = 100 * time.Millisecond
	socketReadDeadline  = 500 * time.Millisecond
)

var execCommand = exec.Command

type MpvCommand struct {
	Command   []any `json:"command"`
	RequestID int   `json:"request_id,omitempty"`
}

type MpvResponse struct {
	Error     string
	RequestID int64
}

// MpvPlayer is a media handle backed by an idle mpv process controlled over
// its JSON IPC socket. The process is started lazily on the first load.
type MpvPlayer struct {
	socketPath string
	cmd        *exec.Cmd
	exited     chan struct{}
	mu         sync.Mutex
	volume     float64
}

func NewMpvPlayer(socketPath string) ports.MediaHandle {
	os.Remove(socketPath)
	return &MpvPlayer{
		socketPath: socketPath,
		volume:     1,
	}
}

func (p *MpvPlayer) isProcessRunning() bool {
	if p.cmd == nil || p.cmd.Process == nil {
		return false
	}
	select {
	case <-p.exited:
		return false
	default:
		return true
	}
}

func volumePercent(level float64) int {
	return int(math.Round(level * 100))
}

func (p *MpvPlayer) startMpvProcess() error {
	if p.isProcessRunning() {
		return nil
	}
	p.cmd = nil

	logger.Log.Info().Msg("Starting new mpv process...")
	args := []string{
		"--idle",
		"--input-ipc-server=" + p.socketPath,
		"--no-video",
		"--no-config",
		"--pause",
		fmt.Sprintf("--volume=%d", volumePercent(p.volume)),
	}

	cmd := execCommand("mpv", args...)
	cmd.Stdout = logger.Log
	cmd.Stderr = logger.Log

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("could not start mpv process: %w", err)
	}

	exited := make(chan struct{})
	go func() {
		err := cmd.Wait()
		logger.Log.Info().Err(err).Msg("mpv process exited")
		close(exited)
	}()
	p.cmd = cmd
	p.exited = exited

	for i := 0; i < socketCheckRetries; i++ {
		if _, err := os.Stat(p.socketPath); err == nil {
			logger.Log.Info().Msg("mpv socket detected. Process ready.")
			return nil
		}
		time.Sleep(socketCheckInterval)
	}

	logger.Log.Error().Str("socket", p.socketPath).Msg("Timed out waiting for mpv socket.")
	cmd.Process.Kill()
	p.cmd = nil
	return fmt.Errorf("mpv process started but socket did not appear at %s", p.socketPath)
}

// sendCommands numbers the commands, writes them in one connection and waits
// for a reply to each. Event lines interleaved by mpv are skipped.
func (p *MpvPlayer) sendCommands(cmds ...MpvCommand) ([]MpvResponse, error) {
	conn, err := net.Dial("unix", p.socketPath)
	if err != nil {
		return nil, fmt.Errorf("could not connect to mpv socket: %w", err)
	}
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(socketReadDeadline))

	encoder := json.NewEncoder(conn)
	for i := range cmds {
		cmds[i].RequestID = i + 1
		if err := encoder.Encode(cmds[i]); err != nil {
			return nil, fmt.Errorf("error sending mpv command: %w", err)
		}
	}

	var responses []MpvResponse
	scanner := bufio.NewScanner(conn)
	for len(responses) < len(cmds) {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return responses, fmt.Errorf("error reading from mpv socket: %w", err)
			}
			return responses, fmt.Errorf("mpv closed the connection after %d of %d replies", len(responses), len(cmds))
		}

		line := scanner.Bytes()
		if event, err := jsonparser.GetString(line, "event"); err == nil && event != "" {
			continue
		}
		requestID, err := jsonparser.GetInt(line, "request_id")
		if err != nil || requestID < 1 || requestID > int64(len(cmds)) {
			logger.Log.Warn().Str("line", string(line)).Msg("Could not parse line from mpv")
			continue
		}
		status, err := jsonparser.GetString(line, "error")
		if err != nil {
			logger.Log.Warn().Str("line", string(line)).Err(err).Msg("mpv reply without status")
			continue
		}
		responses = append(responses, MpvResponse{Error: status, RequestID: requestID})
	}

	for _, resp := range responses {
		if resp.Error != "success" {
			return responses, fmt.Errorf("mpv command %v failed: %s", cmds[resp.RequestID-1].Command, resp.Error)
		}
	}
	return responses, nil
}

// SetSource loads uri paused; Play starts it.
func (p *MpvPlayer) SetSource(uri string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.startMpvProcess(); err != nil {
		return err
	}
	_, err := p.sendCommands(
		MpvCommand{Command: []any{"set_property", "pause", true}},
		MpvCommand{Command: []any{"loadfile", uri, "replace"}},
	)
	return err
}

func (p *MpvPlayer) Play() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.isProcessRunning() {
		return fmt.Errorf("mpv is not running: no source loaded")
	}
	_, err := p.sendCommands(MpvCommand{Command: []any{"set_property", "pause", false}})
	return err
}

func (p *MpvPlayer) Pause() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.isProcessRunning() {
		return nil
	}
	_, err := p.sendCommands(MpvCommand{Command: []any{"set_property", "pause", true}})
	return err
}

// SetVolume is remembered when mpv is not running and applied at start.
func (p *MpvPlayer) SetVolume(level float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.volume = max(0, min(1, level))
	if !p.isProcessRunning() {
		return nil
	}
	_, err := p.sendCommands(MpvCommand{Command: []any{"set_property", "volume", volumePercent(p.volume)}})
	return err
}

func (p *MpvPlayer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.isProcessRunning() {
		if err := p.cmd.Process.Kill(); err != nil {
			logger.Log.Error().Err(err).Msg("Error terminating mpv process")
		}
		<-p.exited
	}
	p.cmd = nil
	os.Remove(p.socketPath)
	return nil
}
