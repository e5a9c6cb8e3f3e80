package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Preview server for a finished run. Lets the converted frames and the
// manifest be checked in a browser before the card goes into the display.
//
//	GET /list            the manifest
//	GET /pic/000001.bmp  a converted frame
//	GET /control/close   stop the server

type PVResp struct {
	returnCode int
	mimeType   string
	resp       []byte
}

var (
	pvNotFound = &PVResp{returnCode: http.StatusNotFound, mimeType: "application/json", resp: []byte(`{"message":"Not Found"}` + "\n")}
	pvRead     = &PVResp{returnCode: http.StatusUnsupportedMediaType, mimeType: "application/json", resp: []byte(`{"message":"Read Error"}` + "\n")}
	pvClosed   = &PVResp{returnCode: http.StatusOK, mimeType: "application/json", resp: []byte(`{"message":"Server-Closed"}` + "\n")}
)

type PreviewServer struct {
	port      int
	diskPath  string
	server    *http.Server
	getRoutes map[string]func([]string, *PreviewServer) *PVResp
	verbose   bool
}

func listHandler(uri []string, ps *PreviewServer) *PVResp {
	b, err := os.ReadFile(filepath.Join(ps.diskPath, MANIFEST_NAME))
	if err != nil {
		return pvNotFound
	}
	return &PVResp{returnCode: http.StatusOK, mimeType: "text/plain", resp: b}
}

func picHandler(uri []string, ps *PreviewServer) *PVResp {
	if len(uri) != 1 || filepath.Base(uri[0]) != uri[0] {
		return pvNotFound
	}
	b, err := os.ReadFile(filepath.Join(ps.diskPath, PIC_SUBFOLDER, uri[0]))
	if err != nil {
		return pvRead
	}
	return &PVResp{returnCode: http.StatusOK, mimeType: "image/bmp", resp: b}
}

func controlHandler(uri []string, ps *PreviewServer) *PVResp {
	if len(uri) == 1 && uri[0] == "close" {
		go func() {
			time.Sleep(2 * time.Second)
			ps.Close()
		}()
		if ps.verbose {
			log.Printf("Stop server requested: port:%d", ps.port)
		}
		return pvClosed
	}
	return pvNotFound
}

func NewPreviewServer(port int, diskPath string, verbose bool) *PreviewServer {
	ps := &PreviewServer{
		port:      port,
		diskPath:  diskPath,
		getRoutes: make(map[string]func([]string, *PreviewServer) *PVResp),
		verbose:   verbose,
	}
	ps.getRoutes["list"] = listHandler
	ps.getRoutes["pic"] = picHandler
	ps.getRoutes["control"] = controlHandler
	ps.server = &http.Server{
		Addr: fmt.Sprintf(":%d", port),
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rq := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
			if r.Method != http.MethodGet || len(rq) == 0 {
				writeResp(w, pvNotFound)
				return
			}
			fn, found := ps.getRoutes[rq[0]]
			if !found {
				writeResp(w, pvNotFound)
				return
			}
			writeResp(w, fn(rq[1:], ps))
		}),
	}
	if verbose {
		log.Printf("Created preview server: port:%d, disk:%s", port, diskPath)
	}
	return ps
}

func writeResp(w http.ResponseWriter, resp *PVResp) {
	w.Header().Set("Content-Type", resp.mimeType)
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(resp.resp)))
	w.WriteHeader(resp.returnCode)
	_, _ = w.Write(resp.resp)
}

func (ps *PreviewServer) Close() {
	if ps.verbose {
		log.Printf("Stopping preview server: port:%d", ps.port)
	}
	ps.server.Close()
}

func (ps *PreviewServer) Run() error {
	log.Printf("Preview on http://localhost:%d/list", ps.port)
	return ps.server.ListenAndServe()
}
