// Package localstore implementa el almacén local persistente del dispositivo:
// un clave-valor durable con valores string opacos (blobs JSON de colecciones
// completas). Es la única fuente de datos del arranque en frío sin red.
package localstore

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

// bucketDatos es el único bucket; una clave por colección
var bucketDatos = []byte("datos")

// Store es el almacén clave-valor sobre un archivo bbolt
type Store struct {
	db *bolt.DB
}

// Open abre (o crea) el archivo del almacén local
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("error al abrir el almacén local: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketDatos)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("error al preparar el almacén local: %w", err)
	}

	return &Store{db: db}, nil
}

// Get devuelve el blob guardado bajo la clave, o "" si no existe
func (s *Store) Get(key string) (string, error) {
	var value string
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketDatos).Get([]byte(key)); v != nil {
			value = string(v)
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("error al leer %q del almacén local: %w", key, err)
	}
	return value, nil
}

// MultiGet devuelve los blobs de varias claves en una sola transacción de
// lectura. Las claves ausentes no aparecen en el mapa.
func (s *Store) MultiGet(keys []string) (map[string]string, error) {
	values := make(map[string]string, len(keys))
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketDatos)
		for _, k := range keys {
			if v := b.Get([]byte(k)); v != nil {
				values[k] = string(v)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error al leer del almacén local: %w", err)
	}
	return values, nil
}

// Set guarda el blob bajo la clave, reemplazando el valor anterior
func (s *Store) Set(key, value string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketDatos).Put([]byte(key), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("error al escribir %q en el almacén local: %w", key, err)
	}
	return nil
}

// Delete borra la clave del almacén
func (s *Store) Delete(key string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketDatos).Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("error al borrar %q del almacén local: %w", key, err)
	}
	return nil
}

// Keys lista las claves presentes en el almacén
func (s *Store) Keys() ([]string, error) {
	var keys []string
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketDatos).ForEach(func(k, _ []byte) error {
			keys = append(keys, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("error al listar el almacén local: %w", err)
	}
	return keys, nil
}

// Close cierra el archivo del almacén
func (s *Store) Close() error {
	return s.db.Close()
}
