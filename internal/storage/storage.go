// Package storage содержит in-memory хранилища сервисов с необязательным
// журналом в файле (JSON lines), который перечитывается при старте.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
)

var (
	// ErrNotFound возвращают все хранилища, когда записи нет.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists — нарушение уникального ключа.
	ErrAlreadyExists = errors.New("record already exists")
)

const (
	opPut    = "put"
	opDelete = "delete"
)

// TablePath даёт путь журнала отдельной таблицы: data.json -> data-customers.json.
// Пустой base означает хранение только в памяти.
func TablePath(base, table string) string {
	if base == "" {
		return ""
	}
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + "-" + table + ext
}

// journalEntry — строка журнала
type journalEntry[T any] struct {
	Op     string `json:"op"`
	ID     int64  `json:"id"`
	Record *T     `json:"record,omitempty"`
}

// table — потокобезопасная таблица записей с int64-ключом
type table[T any] struct {
	mu     sync.RWMutex
	rows   map[int64]T
	seq    int64
	file   string
	logger *zap.Logger
}

func newTable[T any](file string, logger *zap.Logger) *table[T] {
	t := &table[T]{
		rows:   make(map[int64]T),
		file:   file,
		logger: logger,
	}
	if file == "" {
		return t
	}

	// Загружаем данные из файла
	if err := t.loadFromFile(); err != nil {
		logger.Error("Ошибка загрузки из файла", zap.String("file", file), zap.Error(err))
	}
	return t
}

// insert добавляет запись. keyOf получает очередной номер последовательности,
// может записать его в запись и возвращает ключ.
// Таблица меняется только после успешной записи в журнал.
func (t *table[T]) insert(rec T, keyOf func(rec *T, next int64) int64, conflict func(existing T) bool) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, existing := range t.rows {
		if conflict(existing) {
			var zero T
			return zero, ErrAlreadyExists
		}
	}

	key := keyOf(&rec, t.seq+1)
	if _, ok := t.rows[key]; ok {
		var zero T
		return zero, ErrAlreadyExists
	}
	if err := t.appendToFile(journalEntry[T]{Op: opPut, ID: key, Record: &rec}); err != nil {
		var zero T
		return zero, err
	}

	if key > t.seq {
		t.seq = key
	}
	t.rows[key] = rec
	return rec, nil
}

// update заменяет запись key. conflict проверяется на всех остальных записях,
// чтобы обновление не нарушило уникальные поля.
func (t *table[T]) update(key int64, rec T, conflict func(existing T) bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[key]; !ok {
		return ErrNotFound
	}
	for k, existing := range t.rows {
		if k != key && conflict(existing) {
			return ErrAlreadyExists
		}
	}
	if err := t.appendToFile(journalEntry[T]{Op: opPut, ID: key, Record: &rec}); err != nil {
		return err
	}
	t.rows[key] = rec
	return nil
}

func (t *table[T]) delete(key int64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[key]; !ok {
		return ErrNotFound
	}
	if err := t.appendToFile(journalEntry[T]{Op: opDelete, ID: key}); err != nil {
		return err
	}
	delete(t.rows, key)
	return nil
}

func (t *table[T]) get(key int64) (T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	rec, ok := t.rows[key]
	if !ok {
		return rec, ErrNotFound
	}
	return rec, nil
}

// first возвращает запись, подходящую под match. Ключевые поля уникальны,
// поэтому порядок обхода не важен.
func (t *table[T]) first(match func(T) bool) (T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, rec := range t.rows {
		if match(rec) {
			return rec, nil
		}
	}
	var zero T
	return zero, ErrNotFound
}

// loadFromFile проигрывает журнал при старте сервиса
func (t *table[T]) loadFromFile() error {
	file, err := os.Open(t.file)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // Файл ещё не создан, это не ошибка
		}
		return err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	for {
		var entry journalEntry[T]
		if err := decoder.Decode(&entry); err != nil {
			break
		}
		switch entry.Op {
		case opPut:
			if entry.Record != nil {
				t.rows[entry.ID] = *entry.Record
			}
		case opDelete:
			delete(t.rows, entry.ID)
		}
		if entry.ID > t.seq {
			t.seq = entry.ID
		}
	}

	t.logger.Info("Загружены записи из файла", zap.Int("count", len(t.rows)), zap.String("file", t.file))
	return nil
}

// appendToFile дописывает строку журнала, вызывается под блокировкой
func (t *table[T]) appendToFile(entry journalEntry[T]) error {
	if t.file == "" {
		return nil
	}

	file, err := os.OpenFile(t.file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer file.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	_, err = file.Write(append(data, '\n')) // Записываем с новой строки
	return err
}
