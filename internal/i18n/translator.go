package i18n

import (
	"context"
	"log"
	"sync"
)

// Store persists the selected language across restarts.
type Store interface {
	Load(ctx context.Context) (Language, error)
	Save(ctx context.Context, lang Language) error
}

// Translator holds the active language selection and resolves UI strings.
// It is an explicit dependency rather than package-global state so language
// switching stays testable in isolation.
type Translator struct {
	mu    sync.RWMutex
	lang  Language
	store Store
}

// NewTranslator builds a Translator, restoring the persisted selection from
// store when one exists. An unsupported or missing persisted value falls
// back to DefaultLanguage. store may be nil for an in-memory-only instance.
func NewTranslator(ctx context.Context, store Store) *Translator {
	t := &Translator{lang: DefaultLanguage, store: store}
	if store != nil {
		saved, err := store.Load(ctx)
		if err != nil {
			log.Printf("i18n: failed to load persisted language: %v", err)
		} else if Supported(saved) {
			t.lang = saved
		}
	}
	return t
}

// Language returns the active language code.
func (t *Translator) Language() Language {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.lang
}

// SetLanguage switches the active language and persists the selection.
// Unsupported codes are ignored and the prior selection is retained.
func (t *Translator) SetLanguage(ctx context.Context, lang Language) {
	if !Supported(lang) {
		return
	}
	t.mu.Lock()
	t.lang = lang
	t.mu.Unlock()
	if t.store != nil {
		if err := t.store.Save(ctx, lang); err != nil {
			log.Printf("i18n: failed to persist language %q: %v", lang, err)
		}
	}
}

// Translate resolves key in the active language. The fallback order is
// deterministic: active table, then the English table, then the key itself.
func (t *Translator) Translate(key string) string {
	t.mu.RLock()
	lang := t.lang
	t.mu.RUnlock()

	if v, ok := translations[lang][key]; ok {
		return v
	}
	if v, ok := translations[English][key]; ok {
		return v
	}
	return key
}

// Direction returns the layout direction for the active language: "rtl"
// for Arabic, "ltr" otherwise. UI collaborators rely on this contract.
func (t *Translator) Direction() string {
	if t.Language() == Arabic {
		return "rtl"
	}
	return "ltr"
}

// MemoryStore is an in-process Store for tests and single-run tooling.
type MemoryStore struct {
	mu   sync.Mutex
	lang Language
}

func (m *MemoryStore) Load(ctx context.Context) (Language, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lang, nil
}

func (m *MemoryStore) Save(ctx context.Context, lang Language) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lang = lang
	return nil
}
