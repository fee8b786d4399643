package app

import (
	"sort"
	"sync"
)

type Network struct {
	ID      int
	Name    string
	Icon    string
	IPRange string
}

type Machine struct {
	ID        int
	NetworkID int
	Hostname  string
	Address   string
}

type Port struct {
	ID        int
	MachineID int
	Number    int
	Protocol  string
	Service   string
}

// Store is the in-memory workspace inventory behind the demo pages.
type Store struct {
	mu       sync.RWMutex
	networks map[int]Network
	machines map[int]Machine
	ports    map[int]Port
}

func NewStore() *Store {
	return &Store{
		networks: make(map[int]Network),
		machines: make(map[int]Machine),
		ports:    make(map[int]Port),
	}
}

// SeededStore holds workspace 1 with one machine and two open ports.
func SeededStore() *Store {
	s := NewStore()
	s.AddNetwork(Network{ID: 1, Name: "Home lab", Icon: "house", IPRange: "192.168.1.0/24"})
	s.AddMachine(Machine{ID: 1, NetworkID: 1, Hostname: "gateway", Address: "192.168.1.1"})
	s.AddPort(Port{ID: 1, MachineID: 1, Number: 22, Protocol: "tcp", Service: "ssh"})
	s.AddPort(Port{ID: 2, MachineID: 1, Number: 80, Protocol: "tcp", Service: "http"})
	return s
}

func (s *Store) AddNetwork(n Network) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.networks[n.ID] = n
}

func (s *Store) AddMachine(m Machine) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.machines[m.ID] = m
}

func (s *Store) AddPort(p Port) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ports[p.ID] = p
}

func (s *Store) Networks() []Network {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Network, 0, len(s.networks))
	for _, n := range s.networks {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) Network(id int) (Network, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.networks[id]
	return n, ok
}

// Machine returns the machine only if it belongs to the network.
func (s *Store) Machine(networkID, id int) (Machine, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.machines[id]
	if !ok || m.NetworkID != networkID {
		return Machine{}, false
	}
	return m, true
}

func (s *Store) Machines(networkID int) []Machine {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Machine
	for _, m := range s.machines {
		if m.NetworkID == networkID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) Port(machineID, id int) (Port, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.ports[id]
	if !ok || p.MachineID != machineID {
		return Port{}, false
	}
	return p, true
}

func (s *Store) Ports(machineID int) []Port {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Port
	for _, p := range s.ports {
		if p.MachineID == machineID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
