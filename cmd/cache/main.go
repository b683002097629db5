// Herramienta de mantenimiento del almacén local: permite listar las claves
// guardadas, mostrar el contenido de una colección y vaciar la caché del
// dispositivo sin tocar los datos remotos.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/dmfierro/ventas-campo/internal/infrastructure/localstore"
	"github.com/dmfierro/ventas-campo/internal/sincronizacion"
)

func main() {
	// Cargar variables de entorno
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: archivo .env no encontrado: %v", err)
	}

	ruta := flag.String("db", defaultPath(), "ruta del archivo del almacén local")
	flag.Parse()

	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	store, err := localstore.Open(*ruta)
	if err != nil {
		log.Fatalf("Error al abrir el almacén local: %v", err)
	}
	defer store.Close()

	switch flag.Arg(0) {
	case "list":
		if err := listar(store); err != nil {
			log.Fatalf("Error al listar claves: %v", err)
		}
	case "show":
		if flag.NArg() < 2 {
			usage()
			os.Exit(2)
		}
		if err := mostrar(store, flag.Arg(1)); err != nil {
			log.Fatalf("Error al mostrar la clave %q: %v", flag.Arg(1), err)
		}
	case "clear":
		if err := vaciar(store); err != nil {
			log.Fatalf("Error al vaciar la caché: %v", err)
		}
		log.Println("Caché local vaciada")
	default:
		usage()
		os.Exit(2)
	}
}

func defaultPath() string {
	if ruta := os.Getenv("LOCAL_STORE_PATH"); ruta != "" {
		return ruta
	}
	return "ventas-campo.db"
}

func usage() {
	fmt.Fprintf(os.Stderr, "Uso: cache [-db ruta] <list|show <clave>|clear>\n")
	fmt.Fprintf(os.Stderr, "Claves conocidas: %v\n", sincronizacion.TodasLasClaves)
}

func listar(store *localstore.Store) error {
	keys, err := store.Keys()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		fmt.Println("(almacén vacío)")
		return nil
	}
	for _, k := range keys {
		valor, err := store.Get(k)
		if err != nil {
			return err
		}
		fmt.Printf("%-16s %d bytes\n", k, len(valor))
	}
	return nil
}

func mostrar(store *localstore.Store, clave string) error {
	valor, err := store.Get(clave)
	if err != nil {
		return err
	}
	if valor == "" {
		fmt.Println("(sin datos)")
		return nil
	}

	// Reindentar el JSON para inspección manual
	var buf any
	if err := json.Unmarshal([]byte(valor), &buf); err != nil {
		fmt.Println(valor)
		return nil
	}
	bonito, err := json.MarshalIndent(buf, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(bonito))
	return nil
}

func vaciar(store *localstore.Store) error {
	for _, clave := range sincronizacion.TodasLasClaves {
		if err := store.Delete(clave); err != nil {
			return err
		}
	}
	return nil
}
