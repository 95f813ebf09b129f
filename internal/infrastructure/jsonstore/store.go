// Package jsonstore implementa el almacén de colecciones respaldado en un
// único archivo JSON (db.json). Cada mutación persiste el documento completo
// de inmediato; no hay transacciones, el archivado de ventas son dos escrituras
// separadas (ver SaleUseCase.Archive).
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/jhoicas/pos-api/internal/domain/entity"
)

// document es la forma del archivo: una colección ordenada por clave.
type document struct {
	Users        []entity.User    `json:"users"`
	Products     []entity.Product `json:"products"`
	Sales        []entity.Sale    `json:"sales"`
	SalesArchive []entity.Sale    `json:"salesArchive"`
}

// Store almacén en memoria con persistencia a archivo en cada escritura.
// El mutex protege el documento en memoria frente a handlers concurrentes;
// no aísla la transición de dos pasos del archivado.
type Store struct {
	mu   sync.Mutex
	path string
	doc  document
}

// Open carga el documento desde path. Si el archivo no existe lo crea con
// colecciones vacías.
func Open(path string) (*Store, error) {
	s := &Store{path: path}
	raw, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("jsonstore: leer %s: %w", path, err)
		}
		s.doc = emptyDocument()
		if err := s.persistLocked(); err != nil {
			return nil, err
		}
		return s, nil
	}
	if err := json.Unmarshal(raw, &s.doc); err != nil {
		return nil, fmt.Errorf("jsonstore: parsear %s: %w", path, err)
	}
	normalize(&s.doc)
	return s, nil
}

func emptyDocument() document {
	return document{
		Users:        []entity.User{},
		Products:     []entity.Product{},
		Sales:        []entity.Sale{},
		SalesArchive: []entity.Sale{},
	}
}

// normalize asegura slices no nulos para que el documento serialice [] y no null.
func normalize(d *document) {
	if d.Users == nil {
		d.Users = []entity.User{}
	}
	if d.Products == nil {
		d.Products = []entity.Product{}
	}
	if d.Sales == nil {
		d.Sales = []entity.Sale{}
	}
	if d.SalesArchive == nil {
		d.SalesArchive = []entity.Sale{}
	}
}

// persistLocked escribe el documento completo al archivo. El caller debe
// sostener el mutex (u operar antes de publicar el Store).
func (s *Store) persistLocked() error {
	raw, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("jsonstore: serializar documento: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("jsonstore: escribir %s: %w", s.path, err)
	}
	return nil
}

// Path devuelve la ruta del archivo respaldado.
func (s *Store) Path() string {
	return s.path
}

// ── Users ────────────────────────────────────────────────────────────────────

// Users devuelve una copia de la colección de usuarios.
func (s *Store) Users() []entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.User, len(s.doc.Users))
	copy(out, s.doc.Users)
	return out
}

// FindUserByUsername devuelve el usuario con ese username o nil.
func (s *Store) FindUserByUsername(username string) *entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.doc.Users {
		if u.Username == username {
			uc := u
			return &uc
		}
	}
	return nil
}

// InsertUser agrega un usuario y persiste.
func (s *Store) InsertUser(u entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Users = append(s.doc.Users, u)
	return s.persistLocked()
}

// ── Products ─────────────────────────────────────────────────────────────────

// Products devuelve una copia de la colección de productos.
func (s *Store) Products() []entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Product, len(s.doc.Products))
	copy(out, s.doc.Products)
	return out
}

// InsertProduct agrega un producto y persiste.
func (s *Store) InsertProduct(p entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Products = append(s.doc.Products, p)
	return s.persistLocked()
}

// ── Sales ────────────────────────────────────────────────────────────────────

// Sales devuelve una copia de las ventas activas.
func (s *Store) Sales() []entity.Sale {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Sale, len(s.doc.Sales))
	copy(out, s.doc.Sales)
	return out
}

// ArchivedSales devuelve una copia de las ventas archivadas.
func (s *Store) ArchivedSales() []entity.Sale {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Sale, len(s.doc.SalesArchive))
	copy(out, s.doc.SalesArchive)
	return out
}

// FindSaleByID devuelve la venta activa con ese id o nil.
func (s *Store) FindSaleByID(id string) *entity.Sale {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sale := range s.doc.Sales {
		sc := sale
		if sc.ID == id {
			return &sc
		}
	}
	return nil
}

// InsertSale agrega una venta activa y persiste.
func (s *Store) InsertSale(sale entity.Sale) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Sales = append(s.doc.Sales, sale)
	return s.persistLocked()
}

// InsertArchivedSale agrega una venta al archivo y persiste. Es el primer
// paso del archivado: debe quedar durable antes de remover la activa.
func (s *Store) InsertArchivedSale(sale entity.Sale) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.SalesArchive = append(s.doc.SalesArchive, sale)
	return s.persistLocked()
}

// RemoveSale remueve la venta activa con ese id y persiste. Devuelve false si
// no existía (no persiste nada en ese caso).
func (s *Store) RemoveSale(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sale := range s.doc.Sales {
		if sale.ID == id {
			s.doc.Sales = append(s.doc.Sales[:i], s.doc.Sales[i+1:]...)
			return true, s.persistLocked()
		}
	}
	return false, nil
}
