// Package repository serves driver plugin archives to plugin loaders.
package repository

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-home-io/imager/plugins/common"
	"github.com/gorilla/mux"
	"github.com/mholt/archiver"
)

const (
	// Logger system.
	logSystem = "repository"

	// File name API key.
	fileName = "fileName"
	// Arch name API key.
	archName = "arch"

	archiveExt = ".tar.gz"
)

// ConstructRepository has data required for a new repository.
type ConstructRepository struct {
	Logger common.ILoggerProvider
	Folder string
}

// Archive packing request.
type packRequest struct {
	key      string
	archive  string
	callback chan bool
}

// Archive packing response.
type packResponse struct {
	key     string
	success bool
}

// Repository serves <folder>/<arch>/<system>/<name>.so.tar.gz files.
// Missing archives are packed from the .so file next to them.
type Repository struct {
	sync.Mutex

	logger  common.ILoggerProvider
	folder  string
	in      chan *packRequest
	done    chan *packResponse
	stopped chan struct{}
	once    sync.Once
	packing map[string][]chan bool
}

// NewRepository constructs a new repository and starts packing loop.
func NewRepository(ctor *ConstructRepository) *Repository {
	r := &Repository{
		logger:  ctor.Logger,
		folder:  ctor.Folder,
		in:      make(chan *packRequest, 50),
		done:    make(chan *packResponse, 20),
		stopped: make(chan struct{}),
		packing: make(map[string][]chan bool),
	}

	go r.wait()
	return r
}

// Router returns HTTP handler serving archives.
func (r *Repository) Router() http.Handler {
	router := mux.NewRouter()
	router.HandleFunc(fmt.Sprintf("/{%s}/{%s}", archName, fileName), r.handle).Methods(http.MethodGet)
	return router
}

// Stop terminates packing loop.
// Requests for archives which are not packed yet are rejected afterwards.
func (r *Repository) Stop() {
	r.once.Do(func() {
		close(r.stopped)
	})
}

// Checks whether packing loop is terminated.
func (r *Repository) isStopped() bool {
	select {
	case <-r.stopped:
		return true
	default:
		return false
	}
}

// Processes packing requests.
// Concurrent requests for the same archive wait for a single packing run.
func (r *Repository) wait() {
	for {
		select {
		case <-r.stopped:
			return
		case in := <-r.in:
			r.Lock()
			_, ok := r.packing[in.key]
			if !ok {
				r.logger.Debug("Packing archive", common.LogSystemToken, logSystem, common.LogFileToken, in.archive)
				r.packing[in.key] = make([]chan bool, 0)
				go r.pack(in.key, in.archive, r.done)
			}
			r.packing[in.key] = append(r.packing[in.key], in.callback)
			r.Unlock()
		case completed := <-r.done:
			r.Lock()
			for _, v := range r.packing[completed.key] {
				v <- completed.success
			}
			delete(r.packing, completed.key)
			r.Unlock()
		}
	}
}

// Handles REST API request.
func (r *Repository) handle(writer http.ResponseWriter, request *http.Request) {
	vars := mux.Vars(request)
	archive, ok := r.archivePath(vars[archName], vars[fileName])
	if !ok {
		r.logger.Warn("Rejected archive request", common.LogSystemToken, logSystem,
			common.LogURLToken, request.RequestURI)
		writer.WriteHeader(http.StatusBadRequest)
		return
	}

	if _, err := os.Stat(archive); err != nil {
		if r.isStopped() {
			writer.WriteHeader(http.StatusServiceUnavailable)
			return
		}

		callback := make(chan bool, 1)
		select {
		case r.in <- &packRequest{key: archive, archive: archive, callback: callback}:
		case <-r.stopped:
			writer.WriteHeader(http.StatusServiceUnavailable)
			return
		}

		select {
		case success := <-callback:
			if !success {
				writer.WriteHeader(http.StatusNotFound)
				return
			}
		case <-r.stopped:
			writer.WriteHeader(http.StatusServiceUnavailable)
			return
		}
	}

	r.logger.Debug("Serving archive", common.LogSystemToken, logSystem, common.LogFileToken, archive)
	http.ServeFile(writer, request, archive)
}

// Maps request to a file inside of the repository folder.
// Plugin key separator is encoded as the first underscore.
func (r *Repository) archivePath(arch string, file string) (string, bool) {
	if "" == arch || "" == file || !strings.HasSuffix(file, archiveExt) {
		return "", false
	}

	for _, v := range []string{arch, file} {
		if strings.Contains(v, "..") || strings.ContainsAny(v, `/\`) {
			return "", false
		}
	}

	parts := strings.SplitN(file, "_", 2)
	if 2 != len(parts) || "" == parts[0] || "" == parts[1] {
		return "", false
	}

	return filepath.Join(r.folder, arch, parts[0], parts[1]), true
}

// Packs plugin binary into an archive.
func (r *Repository) pack(key string, archive string, callback chan *packResponse) {
	resp := &packResponse{key: key}
	defer func() {
		select {
		case callback <- resp:
		case <-r.stopped:
		}
	}()

	source := strings.TrimSuffix(archive, archiveExt)

	if _, err := os.Stat(source); err != nil {
		r.logger.Warn("Plugin is not found", common.LogSystemToken, logSystem, common.LogFileToken, source)
		return
	}

	// Readers must never see a partially written archive.
	tmp := filepath.Join(filepath.Dir(archive), ".packing-"+filepath.Base(archive))
	if err := archiver.TarGz.Make(tmp, []string{source}); err != nil {
		r.logger.Error("Failed to pack plugin", err, common.LogSystemToken, logSystem,
			common.LogFileToken, source)
		os.Remove(tmp) // nolint: gosec, errcheck
		return
	}

	if err := os.Rename(tmp, archive); err != nil {
		r.logger.Error("Failed to store archive", err, common.LogSystemToken, logSystem,
			common.LogFileToken, archive)
		os.Remove(tmp) // nolint: gosec, errcheck
		return
	}

	resp.success = true
}
