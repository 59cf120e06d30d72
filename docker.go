package tlt

import (
	"context"
	"embed"
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/compose-spec/compose-go/v2/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"
	"github.com/rs/zerolog"
	"github.com/tassa-yoniso-manasi-karoto/dockerutil"
)

const (
	defaultProjectName   = "thaitoolkit"
	defaultContainerName = "thaitoolkit-pythainlp-1"
	serviceCheckInterval = 500 * time.Millisecond
	maxServiceWaitTime   = 480 * time.Second // first run builds and downloads corpora on a slow network

	// GHCR image with PyThaiNLP preinstalled
	ghcrImage = "ghcr.io/tassa-yoniso-manasi-karoto/langkit-pythainlp:latest"
)

// Default engines passed to the sidecar. These are PyThaiNLP engine names;
// romanization engines are the scheme names in romanize.go.
const (
	EngineNewMM      = "newmm"      // dictionary-based word tokenizer with TCC
	EnginePerceptron = "perceptron" // default POS tagger
)

var (
	// Embed the sidecar service
	//go:embed service/*
	serviceFiles embed.FS

	// Embed requirements files
	//go:embed docker_light_requirements.txt
	lightRequirements []byte

	//go:embed docker_full_requirements.txt
	fullRequirements []byte

	// Default settings
	DefaultQueryTimeout   = 30 * time.Second
	DefaultDockerLogLevel = zerolog.TraceLevel

	// UseLightweightMode controls whether to use minimal dependencies
	// (default: true). Lightweight mode has no neural models, so the
	// thai2rom scheme and the sidecar's /translate endpoint degrade to
	// service errors; the translation chain then falls through to the
	// next backend. Set to false before Init() for full capabilities.
	UseLightweightMode = true

	// Logger for this package
	Logger = zerolog.Nop()

	// Package-level instance for the convenience functions
	instance       *Manager
	instanceMu     sync.Mutex
	instanceClosed bool
)

// EnableDebugLogging enables debug logging for the package.
func EnableDebugLogging() {
	Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger()
}

// Manager handles Docker lifecycle and service management for the PyThaiNLP
// sidecar, and implements the Segmenter, POSTagger, StopwordProvider,
// RomanizerBackend and Translator collaborator interfaces on top of it.
type Manager struct {
	docker                   *dockerutil.DockerManager
	logger                   *dockerutil.ContainerLogConsumer
	client                   *Client
	projectName              string
	containerName            string
	serviceURL               string
	servicePort              int
	QueryTimeout             time.Duration
	serviceReady             bool
	lightweightMode          bool
	stopwords                map[string]struct{}
	downloadProgressCallback func(current, total int64, status string)
	mu                       sync.RWMutex
}

// ManagerOption defines function signature for options to configure Manager
type ManagerOption func(*Manager)

// WithQueryTimeout sets a custom query timeout
func WithQueryTimeout(timeout time.Duration) ManagerOption {
	return func(m *Manager) {
		m.QueryTimeout = timeout
	}
}

// WithProjectName sets a custom project name for multiple instances
func WithProjectName(name string) ManagerOption {
	return func(m *Manager) {
		m.projectName = name
		m.containerName = name + "-pythainlp-1"
	}
}

// WithContainerName overrides the default container name
func WithContainerName(name string) ManagerOption {
	return func(m *Manager) {
		m.containerName = name
	}
}

// WithLightweightMode sets whether to use lightweight mode (minimal dependencies)
func WithLightweightMode(lightweight bool) ManagerOption {
	return func(m *Manager) {
		m.lightweightMode = lightweight
	}
}

// WithDownloadProgressCallback sets a callback for download progress during image pull
func WithDownloadProgressCallback(cb func(current, total int64, status string)) ManagerOption {
	return func(m *Manager) {
		m.downloadProgressCallback = cb
	}
}

// ptr returns a pointer to the given string value
func ptr(s string) *string {
	return &s
}

// buildComposeProject creates the compose project definition for the sidecar
func buildComposeProject(projectName, dataDir string, port int) *types.Project {
	return &types.Project{
		Name: projectName,
		Services: types.Services{
			"pythainlp": {
				Name:       "pythainlp",
				Image:      ghcrImage,
				StdinOpen:  true,
				Tty:        true,
				WorkingDir: "/workspace",
				Environment: types.MappingWithEquals{
					"PYTHAINLP_DATA_DIR": ptr("/workspace/pythainlp-data"),
				},
				Volumes: []types.ServiceVolumeConfig{{
					Type:   types.VolumeTypeBind,
					Source: dataDir,
					Target: "/workspace",
				}},
				Ports: []types.ServicePortConfig{{
					Target:    uint32(port),
					Published: fmt.Sprintf("%d", port),
					Protocol:  "tcp",
				}},
			},
		},
	}
}

// NewManager creates a new sidecar manager instance.
func NewManager(ctx context.Context, opts ...ManagerOption) (*Manager, error) {
	dockerutil.SetLogOutput(dockerutil.LogToStdout)

	manager := &Manager{
		projectName:     defaultProjectName,
		containerName:   defaultContainerName,
		QueryTimeout:    DefaultQueryTimeout,
		lightweightMode: UseLightweightMode,
	}

	for _, opt := range opts {
		opt(manager)
	}

	// Get XDG data directory for the sidecar workspace
	dataDir := filepath.Join(xdg.ConfigHome, manager.projectName)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	// Allocate a free port
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		return nil, fmt.Errorf("failed to allocate port: %w", err)
	}
	manager.servicePort = listener.Addr().(*net.TCPAddr).Port
	listener.Close() // Release the port for later use

	Logger.Info().Int("port", manager.servicePort).Msg("Allocated port for PyThaiNLP sidecar")

	project := buildComposeProject(manager.projectName, dataDir, manager.servicePort)

	logConfig := dockerutil.LogConfig{
		Prefix:      manager.projectName,
		ShowService: true,
		ShowType:    true,
		LogLevel:    DefaultDockerLogLevel,
		InitMessage: "for more information",
	}

	logger := dockerutil.NewContainerLogConsumer(logConfig)

	cfg := dockerutil.Config{
		ProjectName:      manager.projectName,
		Project:          project,
		RequiredServices: []string{"pythainlp"},
		LogConsumer:      logger,
		Timeout: dockerutil.Timeout{
			Create:   30 * time.Minute,
			Recreate: 60 * time.Minute,
			Start:    30 * time.Minute,
		},
		OnPullProgress: manager.downloadProgressCallback,
	}

	dockerManager, err := dockerutil.NewDockerManager(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Docker manager: %w", err)
	}

	manager.docker = dockerManager
	manager.logger = logger
	manager.serviceURL = fmt.Sprintf("http://localhost:%d", manager.servicePort)
	manager.client = NewClient(manager.serviceURL, manager.QueryTimeout)

	return manager, nil
}

// PullImage pre-pulls the GHCR image with progress tracking.
func (m *Manager) PullImage(ctx context.Context) error {
	opts := dockerutil.DefaultPullOptions()
	if m.downloadProgressCallback != nil {
		opts.OnProgress = m.downloadProgressCallback
	}
	return dockerutil.PullImage(ctx, ghcrImage, opts)
}

// Init initializes the docker service and starts the sidecar server.
func (m *Manager) Init(ctx context.Context) error {
	if err := m.copyRequirementsFile(); err != nil {
		return err
	}

	if err := m.docker.Init(); err != nil {
		return fmt.Errorf("failed to initialize docker: %w", err)
	}

	if err := m.startService(ctx); err != nil {
		return fmt.Errorf("failed to start sidecar service: %w", err)
	}

	m.loadStopwords(ctx)
	return nil
}

// InitRecreate removes existing containers then builds and starts new ones.
func (m *Manager) InitRecreate(ctx context.Context, noCache bool) error {
	if err := m.copyRequirementsFile(); err != nil {
		return err
	}

	if noCache {
		if err := m.docker.InitRecreateNoCache(); err != nil {
			return err
		}
	} else {
		if err := m.docker.InitRecreate(); err != nil {
			return err
		}
	}

	if err := m.startService(ctx); err != nil {
		return fmt.Errorf("failed to start sidecar service: %w", err)
	}

	m.loadStopwords(ctx)
	return nil
}

// copyRequirementsFile copies the appropriate requirements file based on lightweight mode
func (m *Manager) copyRequirementsFile() error {
	configDir, err := dockerutil.GetConfigDir(m.projectName)
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var requirements []byte
	if m.lightweightMode {
		Logger.Info().Msg("Using lightweight requirements (no neural networks)")
		requirements = lightRequirements
	} else {
		Logger.Info().Msg("Using full requirements (includes neural networks)")
		requirements = fullRequirements
	}

	targetPath := filepath.Join(configDir, "docker_requirements.txt")
	if err := os.WriteFile(targetPath, requirements, 0644); err != nil {
		return fmt.Errorf("failed to write requirements file: %w", err)
	}

	Logger.Debug().Str("path", targetPath).Bool("lightweight", m.lightweightMode).Msg("Requirements file written")
	return nil
}

// startService copies the service files and starts the sidecar server
func (m *Manager) startService(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	Logger.Debug().Msg("Starting service...")

	dockerClient, err := m.docker.GetClient()
	if err != nil {
		return fmt.Errorf("failed to get Docker client: %w", err)
	}

	Logger.Debug().Msg("Copying service files...")
	if err := m.copyServiceFiles(ctx, dockerClient); err != nil {
		return fmt.Errorf("failed to copy service files: %w", err)
	}

	Logger.Debug().Msg("Checking if service is already running...")
	if m.isServiceRunning(ctx) {
		m.serviceReady = true
		Logger.Debug().Msg("Service is already running")
		return nil
	}
	Logger.Debug().Msg("Service is not running, starting it...")

	// Start the service in a new bash session to avoid the interactive Python REPL
	startCmd := []string{
		"/bin/bash", "-c",
		"exec python -u /workspace/service/server.py",
	}

	execConfig := container.ExecOptions{
		Cmd:          startCmd,
		AttachStdout: false,
		AttachStderr: false,
		Detach:       true,
		Tty:          false,
		WorkingDir:   "/workspace",
	}

	exec, err := dockerClient.ContainerExecCreate(ctx, m.containerName, execConfig)
	if err != nil {
		return fmt.Errorf("failed to create service exec: %w", err)
	}

	if err := dockerClient.ContainerExecStart(ctx, exec.ID, container.ExecStartOptions{
		Detach: true,
		Tty:    false,
	}); err != nil {
		return fmt.Errorf("failed to start service: %w", err)
	}

	Logger.Debug().Msg("Waiting for service to be ready...")
	if err := m.waitForService(ctx); err != nil {
		return fmt.Errorf("service failed to start: %w", err)
	}

	m.serviceReady = true
	return nil
}

// copyServiceFiles copies the embedded service files into the container
func (m *Manager) copyServiceFiles(ctx context.Context, dockerClient *client.Client) error {
	content, err := serviceFiles.ReadFile("service/server.py")
	if err != nil {
		return fmt.Errorf("failed to read server.py: %w", err)
	}

	// Replace port placeholder with actual port
	portStr := fmt.Sprintf("%d", m.servicePort)
	modifiedContent := strings.ReplaceAll(string(content), "__TLT_SERVICE_PORT__", portStr)

	if strings.Contains(modifiedContent, "__TLT_SERVICE_PORT__") {
		return fmt.Errorf("failed to replace port placeholder in server.py")
	}

	mkdirCmd := []string{"mkdir", "-p", "/workspace/service"}
	if _, err := m.execCommand(ctx, dockerClient, mkdirCmd); err != nil {
		return fmt.Errorf("failed to create service directory: %w", err)
	}

	writeCmd := []string{
		fmt.Sprintf("cat > /workspace/service/server.py << 'EOF'\n%s\nEOF", modifiedContent),
	}
	if _, err := m.execCommand(ctx, dockerClient, writeCmd); err != nil {
		return fmt.Errorf("failed to write server.py: %w", err)
	}

	chmodCmd := []string{"chmod", "+x", "/workspace/service/server.py"}
	if _, err := m.execCommand(ctx, dockerClient, chmodCmd); err != nil {
		return fmt.Errorf("failed to chmod server.py: %w", err)
	}

	return nil
}

// execCommand executes a command in the container and returns the output
func (m *Manager) execCommand(ctx context.Context, dockerClient *client.Client, cmd []string) ([]byte, error) {
	// Use bash since the container might have Python as the main process
	bashCmd := append([]string{"/bin/bash", "-c"}, strings.Join(cmd, " "))

	Logger.Trace().Strs("command", bashCmd).Msg("Executing command")

	execConfig := container.ExecOptions{
		Cmd:          bashCmd,
		AttachStdout: true,
		AttachStderr: true,
		Tty:          false,
		WorkingDir:   "/workspace",
	}

	exec, err := dockerClient.ContainerExecCreate(ctx, m.containerName, execConfig)
	if err != nil {
		return nil, err
	}

	resp, err := dockerClient.ContainerExecAttach(ctx, exec.ID, container.ExecStartOptions{})
	if err != nil {
		return nil, err
	}
	defer resp.Close()

	output, err := io.ReadAll(resp.Reader)
	if err != nil {
		return nil, err
	}

	Logger.Trace().Str("output", string(output)).Msg("Command output")
	return output, nil
}

// isServiceRunning checks if the sidecar service is responding
func (m *Manager) isServiceRunning(ctx context.Context) bool {
	health, err := m.client.Health(ctx)
	if err != nil {
		Logger.Trace().Err(err).Msg("Health check error")
		return false
	}
	return health.Status == "ready"
}

// waitForService waits for the sidecar service to be ready
func (m *Manager) waitForService(ctx context.Context) error {
	deadline := time.Now().Add(maxServiceWaitTime)

	attempt := 0
	for time.Now().Before(deadline) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(serviceCheckInterval):
			attempt++
			Logger.Trace().Int("attempt", attempt).Msg("Health check attempt")
			if m.isServiceRunning(ctx) {
				Logger.Debug().Msg("Service is ready!")
				return nil
			}
		}
	}

	return fmt.Errorf("service failed to start within %v", maxServiceWaitTime)
}

// loadStopwords fetches and caches the stopword set. Best effort: without
// it, IsStopword reports false for everything.
func (m *Manager) loadStopwords(ctx context.Context) {
	words, err := m.client.Stopwords(ctx)
	if err != nil {
		Logger.Warn().Err(err).Msg("Could not load stopword set")
		return
	}

	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}

	m.mu.Lock()
	m.stopwords = set
	m.mu.Unlock()
	Logger.Debug().Int("count", len(set)).Msg("Stopword set loaded")
}

// Collaborator interface implementations

// Segment implements Segmenter using the default tokenizer engine.
func (m *Manager) Segment(ctx context.Context, text string) ([]string, error) {
	if !m.IsReady() {
		return nil, fmt.Errorf("service not ready")
	}
	tokens, err := m.client.Tokenize(ctx, text, EngineNewMM)
	if err != nil {
		return nil, fmt.Errorf("tokenization failed: %w", err)
	}
	return tokens, nil
}

// TagPOS implements POSTagger using the default tagger engine.
func (m *Manager) TagPOS(ctx context.Context, words []string) ([]string, error) {
	if !m.IsReady() {
		return nil, fmt.Errorf("service not ready")
	}
	tags, err := m.client.TagPOS(ctx, words, EnginePerceptron)
	if err != nil {
		return nil, fmt.Errorf("POS tagging failed: %w", err)
	}
	return tags, nil
}

// IsStopword implements StopwordProvider against the cached stopword set.
func (m *Manager) IsStopword(word string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.stopwords[word]
	return ok
}

// RomanizeWith implements RomanizerBackend.
func (m *Manager) RomanizeWith(ctx context.Context, text, scheme string) (string, error) {
	if !m.IsReady() {
		return "", fmt.Errorf("service not ready")
	}
	return m.client.Romanize(ctx, text, scheme)
}

// Translate implements Translator via the sidecar. Lightweight sidecars
// have no translation models and return a service error, which the
// translation chain treats as a signal to fall through.
func (m *Manager) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	if !m.IsReady() {
		return "", fmt.Errorf("service not ready")
	}
	return m.client.Translate(ctx, text, sourceLang, targetLang)
}

// BreakdownEngine returns a breakdown engine wired to this manager's
// collaborators, with the Google web endpoint as translation fallback.
func (m *Manager) BreakdownEngine() *BreakdownEngine {
	mt := TranslatorChain{m, NewGoogleTranslator(m.QueryTimeout)}
	return NewBreakdownEngine(m, m, m, mt)
}

// GetClient returns the HTTP client for making API calls
func (m *Manager) GetClient() *Client {
	return m.client
}

// IsReady returns whether the service is ready to accept requests
func (m *Manager) IsReady() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.serviceReady
}

// IsLightweightMode returns whether the manager is using lightweight mode
func (m *Manager) IsLightweightMode() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lightweightMode
}

// Stop stops the docker service
func (m *Manager) Stop(ctx context.Context) error {
	m.mu.Lock()
	m.serviceReady = false
	m.mu.Unlock()

	return m.docker.Stop()
}

// Close implements io.Closer
func (m *Manager) Close() error {
	m.mu.Lock()
	m.serviceReady = false
	m.mu.Unlock()

	m.logger.Close()
	return m.docker.Close()
}

// Package-level default instance management

// getOrCreateDefaultManager returns or creates the default manager instance
func getOrCreateDefaultManager(ctx context.Context) (*Manager, error) {
	instanceMu.Lock()
	defer instanceMu.Unlock()

	if instance == nil || instanceClosed {
		mgr, err := NewManager(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create default manager: %w", err)
		}
		instance = mgr
		instanceClosed = false
	}

	return instance, nil
}

// Init initializes the default docker service
func Init() error {
	ctx := context.Background()
	mgr, err := getOrCreateDefaultManager(ctx)
	if err != nil {
		return err
	}
	return mgr.Init(ctx)
}

// InitRecreate removes existing containers and creates new ones
func InitRecreate(noCache bool) error {
	ctx := context.Background()
	mgr, err := getOrCreateDefaultManager(ctx)
	if err != nil {
		return err
	}
	return mgr.InitRecreate(ctx, noCache)
}

// Close closes the default instance
func Close() error {
	instanceMu.Lock()
	defer instanceMu.Unlock()

	if instance != nil {
		err := instance.Close()
		instanceClosed = true
		return err
	}
	return nil
}

// SetDefaultManager sets a custom manager as the package-level default
// instance so code using the convenience functions shares its container.
func SetDefaultManager(mgr *Manager) {
	instanceMu.Lock()
	defer instanceMu.Unlock()
	instance = mgr
	instanceClosed = false
}

// ClearDefaultManager clears the default manager reference without closing
// it; the caller remains responsible for the manager's lifecycle.
func ClearDefaultManager() {
	instanceMu.Lock()
	defer instanceMu.Unlock()
	instance = nil
	instanceClosed = true
}
