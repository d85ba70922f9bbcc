package capture

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"sync"

	"github.com/vaultget/media-vault/internal/model"
)

// FFmpeg constants for capture settings
const (
	// Executable
	FFmpegCommand = "ffmpeg"

	// Encoding settings. Ultrafast keeps encoding real-time on modest
	// hardware; the vault stores whatever the encoder produces, opaque.
	VideoCodec   = "libx264"
	VideoPreset  = "ultrafast"
	AudioCodec   = "aac"
	AudioBitrate = "128k"

	// Container and output. Matroska finalizes cleanly on a non-seekable
	// pipe, which the chunked write path requires.
	ContainerFormat = "matroska"
	OutputPipe      = "pipe:1"

	// Capture defaults
	DefaultFrameRate = 30
	DefaultFrameSize = "1280x720"

	// Input devices per platform. The dshow aliases are resolved by
	// ffmpeg against the first matching device.
	LinuxCameraDevice    = "/dev/video0"
	LinuxAudioDevice     = "default"
	DarwinWebcamInput    = "0:0"
	DarwinScreenInput    = "Capture screen 0:none"
	WindowsWebcamInput   = "video=default:audio=default"
	WindowsScreenInput   = "desktop"
	DefaultX11Display    = ":0.0"
	X11DisplayEnvironVar = "DISPLAY"
)

// Options configures the ffmpeg capture backend.
type Options struct {
	BinaryPath string // ffmpeg executable; defaults to FFmpegCommand
	FrameRate  int    // capture frame rate; defaults to DefaultFrameRate
	FrameSize  string // webcam frame size; defaults to DefaultFrameSize
}

// FFmpegGrabber acquires capture streams by running ffmpeg against the
// platform's device inputs, emitting matroska to stdout.
type FFmpegGrabber struct {
	opts Options
}

// NewFFmpegGrabber creates the production grabber with defaults applied.
func NewFFmpegGrabber(opts Options) *FFmpegGrabber {
	if opts.BinaryPath == "" {
		opts.BinaryPath = FFmpegCommand
	}
	if opts.FrameRate <= 0 {
		opts.FrameRate = DefaultFrameRate
	}
	if opts.FrameSize == "" {
		opts.FrameSize = DefaultFrameSize
	}
	return &FFmpegGrabber{opts: opts}
}

// Probe checks once, at startup, that capture and recording are possible:
// the ffmpeg binary must resolve and the current platform must have known
// capture inputs. Not re-evaluated later.
func (g *FFmpegGrabber) Probe() error {
	if _, err := exec.LookPath(g.opts.BinaryPath); err != nil {
		return fmt.Errorf("media capture requires ffmpeg: %w", err)
	}
	if _, err := buildCaptureArgs(runtime.GOOS, model.CategoryWebcam, g.opts); err != nil {
		return err
	}
	if _, err := buildCaptureArgs(runtime.GOOS, model.CategoryScreen, g.opts); err != nil {
		return err
	}
	return nil
}

// Open starts an ffmpeg capture process for the category and returns its
// output as a stream.
func (g *FFmpegGrabber) Open(ctx context.Context, category model.Category) (Stream, error) {
	args, err := buildCaptureArgs(runtime.GOOS, category, g.opts)
	if err != nil {
		return nil, err
	}

	cmd := exec.CommandContext(ctx, g.opts.BinaryPath, args...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to create capture pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to create diagnostics pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start ffmpeg capture: %w", err)
	}

	go logDiagnostics(category, stderr)

	return &ffmpegStream{cmd: cmd, stdout: stdout}, nil
}

// buildCaptureArgs assembles the full ffmpeg argument list for one capture
// session on the given platform.
func buildCaptureArgs(goos string, category model.Category, opts Options) ([]string, error) {
	args := []string{"-hide_banner", "-loglevel", "error", "-nostdin"}

	inputs, err := captureInputs(goos, category, opts)
	if err != nil {
		return nil, err
	}
	args = append(args, inputs...)

	// Encode
	args = append(args, "-c:v", VideoCodec, "-preset", VideoPreset)
	if category == model.CategoryWebcam {
		args = append(args, "-c:a", AudioCodec, "-b:a", AudioBitrate)
	} else {
		args = append(args, "-an") // screen capture records video only
	}

	// Container to stdout
	args = append(args, "-f", ContainerFormat, OutputPipe)
	return args, nil
}

// captureInputs returns the platform input arguments for a category.
func captureInputs(goos string, category model.Category, opts Options) ([]string, error) {
	frameRate := strconv.Itoa(opts.FrameRate)

	switch category {
	case model.CategoryWebcam:
		switch goos {
		case "linux":
			return []string{
				"-f", "v4l2", "-framerate", frameRate, "-video_size", opts.FrameSize, "-i", LinuxCameraDevice,
				"-f", "alsa", "-i", LinuxAudioDevice,
			}, nil
		case "darwin":
			return []string{
				"-f", "avfoundation", "-framerate", frameRate, "-video_size", opts.FrameSize, "-i", DarwinWebcamInput,
			}, nil
		case "windows":
			return []string{
				"-f", "dshow", "-framerate", frameRate, "-video_size", opts.FrameSize, "-i", WindowsWebcamInput,
			}, nil
		}
	case model.CategoryScreen:
		switch goos {
		case "linux":
			display := os.Getenv(X11DisplayEnvironVar)
			if display == "" {
				display = DefaultX11Display
			}
			return []string{"-f", "x11grab", "-framerate", frameRate, "-i", display}, nil
		case "darwin":
			return []string{"-f", "avfoundation", "-framerate", frameRate, "-i", DarwinScreenInput}, nil
		case "windows":
			return []string{"-f", "gdigrab", "-framerate", frameRate, "-i", WindowsScreenInput}, nil
		}
	default:
		return nil, fmt.Errorf("cannot capture category %s", category)
	}

	return nil, fmt.Errorf("no capture inputs known for %s", goos)
}

// logDiagnostics drains ffmpeg's stderr so capture problems show up in the
// log without blocking the process.
func logDiagnostics(category model.Category, stderr io.Reader) {
	scanner := bufio.NewScanner(stderr)
	for scanner.Scan() {
		log.Printf("ffmpeg[%s]: %s", category, scanner.Text())
	}
}

// ffmpegStream wraps one running capture process.
type ffmpegStream struct {
	cmd    *exec.Cmd
	stdout io.ReadCloser

	releaseOnce sync.Once
	waitOnce    sync.Once
}

// Data returns the container byte stream. It reaches EOF once ffmpeg exits.
func (fs *ffmpegStream) Data() io.Reader {
	return fs.stdout
}

// Stop asks ffmpeg to finalize the container and exit. On platforms
// without interrupt delivery the process is killed instead; matroska
// remains readable either way.
func (fs *ffmpegStream) Stop() error {
	if fs.cmd.Process == nil {
		return nil
	}
	if runtime.GOOS == "windows" {
		return fs.cmd.Process.Kill()
	}
	return fs.cmd.Process.Signal(os.Interrupt)
}

// Release tears the capture process down and reaps it.
func (fs *ffmpegStream) Release() {
	fs.releaseOnce.Do(func() {
		if fs.cmd.Process != nil {
			fs.cmd.Process.Kill()
		}
		fs.waitOnce.Do(func() {
			fs.cmd.Wait()
		})
	})
}
