// internal/i18n/i18n.go
package i18n

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

type I18n struct {
	mu           sync.RWMutex
	translations map[string]map[string]string
	defaultLang  string
}

var instance *I18n
var once sync.Once

// Built-in English catalog; locale files on disk override it.
var defaultEnglish = map[string]string{
	KeyAuthRequired:           "Authentication required",
	KeyAuthInvalidToken:       "Invalid authentication token",
	KeyAuthTokenExpired:       "Authentication token has expired",
	KeyAuthInvalidCredentials: "Invalid email or password",
	KeyAdminAccessDenied:      "Administrator access required",
	KeyProductNotFound:        "Product not found",
	KeyProductCreated:         "Product created",
	KeyFacetNotFound:          "Facet not found",
	KeyFacetUpdated:           "Facet updated",
	KeyCategoryNotFound:       "Category not found",
	KeyCollectionNotFound:     "Collection not found",
	KeySignaturePieceNotFound: "Signature piece not found",
	KeyValidationInvalid:      "Invalid %s",
}

func Initialize(localesPath string) error {
	var err error
	once.Do(func() {
		instance = &I18n{
			translations: map[string]map[string]string{"en": defaultEnglish},
			defaultLang:  "en",
		}
		err = instance.LoadTranslations(localesPath)
	})
	return err
}

// LoadTranslations merges every *.json file in localesPath into the catalog.
// A missing directory is not an error; the embedded defaults still apply.
func (i *I18n) LoadTranslations(localesPath string) error {
	entries, err := os.ReadDir(localesPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read locales directory %s: %w", localesPath, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		lang := strings.TrimSuffix(entry.Name(), ".json")

		data, err := os.ReadFile(filepath.Join(localesPath, entry.Name()))
		if err != nil {
			return fmt.Errorf("failed to read locale file %s: %w", entry.Name(), err)
		}

		var translations map[string]string
		if err := json.Unmarshal(data, &translations); err != nil {
			return fmt.Errorf("failed to unmarshal locale file %s: %w", entry.Name(), err)
		}

		i.mu.Lock()
		if i.translations[lang] == nil {
			i.translations[lang] = make(map[string]string)
		}
		for key, value := range translations {
			i.translations[lang][key] = value
		}
		i.mu.Unlock()
	}

	return nil
}

func (i *I18n) T(lang, key string, args ...interface{}) string {
	i.mu.RLock()
	defer i.mu.RUnlock()

	catalog, ok := i.translations[lang]
	if !ok {
		catalog = i.translations[i.defaultLang]
	}

	message, ok := catalog[key]
	if !ok {
		if fallback, found := i.translations[i.defaultLang][key]; found {
			message = fallback
		} else {
			message = key
		}
	}

	if len(args) > 0 {
		return fmt.Sprintf(message, args...)
	}
	return message
}

// T translates a key through the package instance. It is safe before
// Initialize: the embedded English catalog is always available.
func T(lang, key string, args ...interface{}) string {
	if instance == nil {
		Initialize("")
	}
	return instance.T(lang, key, args...)
}
