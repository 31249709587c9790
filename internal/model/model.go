// Package model contains data structures for launch parameters of the cli and the search-node, plus node DTO
package model

// CaseInsensitiveEnv - наличие переменной (с любым значением) отключает регистрозависимый поиск
const CaseInsensitiveEnv = "CASE_INSENSITIVE"

// DefaultNodeAddress - адрес search-node, если --address не указан
const DefaultNodeAddress = ":8080"

// Config - параметры запуска cli, после Resolve не меняются
type Config struct {
	Query         string // подстрока для поиска
	Source        string // имя файла для чтения данных
	CaseSensitive bool   // false если выставлена CASE_INSENSITIVE
}

// NodeInit - параметры запуска search-node
type NodeInit struct {
	Address string
}

// SearchTask - задание, которое search-node получает на POST /search
type SearchTask struct {
	TaskID        string `json:"tid"`
	Query         string `json:"query"`
	CaseSensitive bool   `json:"case_sensitive"`
	Input         string `json:"input"`
}

// SearchResult - ответ search-node: найденные строки и xxhash от них
type SearchResult struct {
	TaskID   string   `json:"tid"`
	HashSumm uint64   `json:"hash"`
	Output   []string `json:"output"`
}
