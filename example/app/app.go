// Package app is a small network inventory site used to exercise the
// prerender pipeline. Workspaces, machines and ports only exist at runtime,
// so their template routes answer 404 during a build.
package app

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type server struct {
	store  *Store
	logger *slog.Logger
}

func New(store *Store, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	s := &server{store: store, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", s.home)
	r.Get("/roadmap", s.roadmap)
	r.Get("/settings", s.settings)

	r.Route("/workspace", func(r chi.Router) {
		r.Get("/create/name", s.createStep("Name", "Pick a name for the workspace.", "/workspace/create/icon"))
		r.Get("/create/icon", s.createStep("Icon", "Choose an icon.", "/workspace/create/iprange"))
		r.Get("/create/iprange", s.createStep("IP range", "Enter the CIDR range to scan.", "/"))

		r.Route("/{network_id}", func(r chi.Router) {
			r.Get("/", s.workspace)
			r.Get("/newscan", s.newScan)
			r.Get("/machine", s.machines)
			r.Get("/machine/{machine_id}", s.machine)
			r.Get("/machine/{machine_id}/port", s.ports)
			r.Get("/machine/{machine_id}/port/{port_id}", s.port)
		})
	})

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		s.render(w, http.StatusNotFound, pageData{Title: "Not found", Heading: "Page not found"})
	})

	return r
}

func (s *server) render(w http.ResponseWriter, status int, data pageData) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		s.logger.Error("render page", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

func (s *server) notFound(w http.ResponseWriter) {
	s.render(w, http.StatusNotFound, pageData{Title: "Not found", Heading: "Page not found"})
}

func (s *server) home(w http.ResponseWriter, r *http.Request) {
	data := pageData{Title: "Workspaces", Heading: "Workspaces"}
	for _, n := range s.store.Networks() {
		data.Links = append(data.Links, link{Href: networkPath(n.ID), Label: n.Name})
	}
	data.Links = append(data.Links, link{Href: "/workspace/create/name", Label: "Create workspace"})
	s.render(w, http.StatusOK, data)
}

func (s *server) roadmap(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, pageData{
		Title:   "Roadmap",
		Heading: "Roadmap",
		Lines:   []string{"Service fingerprinting", "Scheduled scans", "Export to CSV"},
	})
}

func (s *server) settings(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, pageData{
		Title:   "Settings",
		Heading: "Settings",
		Lines:   []string{"Scan timeout: 2s", "Parallel scans: 64"},
	})
}

func (s *server) createStep(step, hint, next string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		label := "Next"
		if next == "/" {
			label = "Finish"
		}
		s.render(w, http.StatusOK, pageData{
			Title:   "New workspace",
			Heading: "New workspace: " + step,
			Lines:   []string{hint},
			Links:   []link{{Href: next, Label: label}},
		})
	}
}

func (s *server) workspace(w http.ResponseWriter, r *http.Request) {
	n, ok := s.network(r)
	if !ok {
		s.notFound(w)
		return
	}
	s.render(w, http.StatusOK, pageData{
		Title:   n.Name,
		Heading: n.Name,
		Lines:   []string{"Range: " + n.IPRange, "Icon: " + n.Icon},
		Links: []link{
			{Href: networkPath(n.ID) + "/machine", Label: "Machines"},
			{Href: networkPath(n.ID) + "/newscan", Label: "New scan"},
		},
	})
}

func (s *server) newScan(w http.ResponseWriter, r *http.Request) {
	n, ok := s.network(r)
	if !ok {
		s.notFound(w)
		return
	}
	s.render(w, http.StatusOK, pageData{
		Title:   "New scan",
		Heading: "New scan of " + n.Name,
		Lines:   []string{"Target: " + n.IPRange},
		Links:   []link{{Href: networkPath(n.ID), Label: "Back"}},
	})
}

func (s *server) machines(w http.ResponseWriter, r *http.Request) {
	n, ok := s.network(r)
	if !ok {
		s.notFound(w)
		return
	}
	data := pageData{Title: "Machines", Heading: "Machines in " + n.Name}
	for _, m := range s.store.Machines(n.ID) {
		data.Links = append(data.Links, link{Href: machinePath(n.ID, m.ID), Label: m.Hostname})
	}
	s.render(w, http.StatusOK, data)
}

func (s *server) machine(w http.ResponseWriter, r *http.Request) {
	n, m, ok := s.machineOf(r)
	if !ok {
		s.notFound(w)
		return
	}
	s.render(w, http.StatusOK, pageData{
		Title:   m.Hostname,
		Heading: m.Hostname,
		Lines:   []string{"Address: " + m.Address},
		Links:   []link{{Href: machinePath(n.ID, m.ID) + "/port", Label: "Ports"}},
	})
}

func (s *server) ports(w http.ResponseWriter, r *http.Request) {
	n, m, ok := s.machineOf(r)
	if !ok {
		s.notFound(w)
		return
	}
	data := pageData{Title: "Ports", Heading: "Open ports on " + m.Hostname}
	for _, p := range s.store.Ports(m.ID) {
		data.Links = append(data.Links, link{
			Href:  fmt.Sprintf("%s/port/%d", machinePath(n.ID, m.ID), p.ID),
			Label: fmt.Sprintf("%d/%s", p.Number, p.Protocol),
		})
	}
	s.render(w, http.StatusOK, data)
}

func (s *server) port(w http.ResponseWriter, r *http.Request) {
	n, m, ok := s.machineOf(r)
	if !ok {
		s.notFound(w)
		return
	}
	id, ok := pathID(r, "port_id")
	if !ok {
		s.notFound(w)
		return
	}
	p, ok := s.store.Port(m.ID, id)
	if !ok {
		s.notFound(w)
		return
	}
	s.render(w, http.StatusOK, pageData{
		Title:   fmt.Sprintf("%d/%s", p.Number, p.Protocol),
		Heading: fmt.Sprintf("Port %d/%s on %s", p.Number, p.Protocol, m.Hostname),
		Lines:   []string{"Service: " + p.Service},
		Links:   []link{{Href: machinePath(n.ID, m.ID) + "/port", Label: "All ports"}},
	})
}

func (s *server) network(r *http.Request) (Network, bool) {
	id, ok := pathID(r, "network_id")
	if !ok {
		return Network{}, false
	}
	return s.store.Network(id)
}

func (s *server) machineOf(r *http.Request) (Network, Machine, bool) {
	n, ok := s.network(r)
	if !ok {
		return Network{}, Machine{}, false
	}
	id, ok := pathID(r, "machine_id")
	if !ok {
		return Network{}, Machine{}, false
	}
	m, ok := s.store.Machine(n.ID, id)
	return n, m, ok
}

func pathID(r *http.Request, key string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, key))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func networkPath(id int) string {
	return "/workspace/" + strconv.Itoa(id)
}

func machinePath(networkID, machineID int) string {
	return fmt.Sprintf("%s/machine/%d", networkPath(networkID), machineID)
}
