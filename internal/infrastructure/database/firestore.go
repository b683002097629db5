package database

import (
	"context"
	"fmt"
	"os"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// FirebaseConfig contiene la configuración para conectarse a Firebase
type FirebaseConfig struct {
	ProjectID       string
	CredentialsFile string
}

// NewFirebaseConfigFromEnv crea una nueva configuración a partir de variables de ambiente
func NewFirebaseConfigFromEnv() *FirebaseConfig {
	return &FirebaseConfig{
		ProjectID:       getEnv("FIREBASE_PROJECT_ID", ""),
		CredentialsFile: getEnv("FIREBASE_CREDENTIALS_FILE", getEnv("GOOGLE_APPLICATION_CREDENTIALS", "")),
	}
}

// FirebaseDB agrupa los clientes de Firestore y Firebase Auth
type FirebaseDB struct {
	Firestore *firestore.Client
	Auth      *firebaseauth.Client
}

// NewFirebaseDB inicializa la app de Firebase y abre los clientes de
// Firestore y Auth. Firestore es el almacén de datos remoto y Auth el
// proveedor de identidad; ambos salen de la misma app.
func NewFirebaseDB(ctx context.Context, config *FirebaseConfig) (*FirebaseDB, error) {
	var opts []option.ClientOption
	if config.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(config.CredentialsFile))
	}

	var fbConfig *firebase.Config
	if config.ProjectID != "" {
		fbConfig = &firebase.Config{ProjectID: config.ProjectID}
	}

	app, err := firebase.NewApp(ctx, fbConfig, opts...)
	if err != nil {
		return nil, fmt.Errorf("error al inicializar la app de Firebase: %w", err)
	}

	fs, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("error al abrir el cliente de Firestore: %w", err)
	}

	auth, err := app.Auth(ctx)
	if err != nil {
		fs.Close()
		return nil, fmt.Errorf("error al abrir el cliente de Firebase Auth: %w", err)
	}

	return &FirebaseDB{
		Firestore: fs,
		Auth:      auth,
	}, nil
}

// Close cierra el cliente de Firestore
func (db *FirebaseDB) Close() {
	if db.Firestore != nil {
		db.Firestore.Close()
	}
}

// getEnv devuelve el valor de una variable de ambiente o un valor por defecto
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
