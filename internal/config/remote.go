package config

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const remoteTimeout = 5 * time.Second

// Environment — ответ config server на GET /{application}/{profile}.
type Environment struct {
	Name            string           `json:"name"`
	Profiles        []string         `json:"profiles"`
	Label           string           `json:"label,omitempty"`
	Version         string           `json:"version,omitempty"`
	PropertySources []PropertySource `json:"propertySources"`
}

// PropertySource — один файл свойств; ключи плоские, через точку.
type PropertySource struct {
	Name   string         `json:"name"`
	Source map[string]any `json:"source"`
}

// FetchEnvironment забирает конфигурацию приложения с config server.
func FetchEnvironment(ctx context.Context, client *http.Client, baseURL, application, profile string) (*Environment, error) {
	endpoint := strings.TrimRight(baseURL, "/") + "/" + url.PathEscape(application) + "/" + url.PathEscape(profile)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("config server returned %d", resp.StatusCode)
	}

	var env Environment
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode environment: %w", err)
	}
	return &env, nil
}

func mergeRemote(v *viper.Viper, baseURL, application, profile string) error {
	ctx, cancel := context.WithTimeout(context.Background(), remoteTimeout)
	defer cancel()

	env, err := FetchEnvironment(ctx, &http.Client{Timeout: remoteTimeout}, baseURL, application, profile)
	if err != nil {
		return err
	}

	// Первый источник самый приоритетный, поэтому сливаем с конца
	for i := len(env.PropertySources) - 1; i >= 0; i-- {
		if err := v.MergeConfigMap(Unflatten(env.PropertySources[i].Source)); err != nil {
			return fmt.Errorf("merge %s: %w", env.PropertySources[i].Name, err)
		}
	}
	return nil
}

// Unflatten превращает {"contact.name": "x"} во вложенную карту {"contact": {"name": "x"}}.
func Unflatten(flat map[string]any) map[string]any {
	out := make(map[string]any, len(flat))
	for key, val := range flat {
		parts := strings.Split(key, ".")
		node := out
		for _, p := range parts[:len(parts)-1] {
			next, ok := node[p].(map[string]any)
			if !ok {
				next = make(map[string]any)
				node[p] = next
			}
			node = next
		}
		node[parts[len(parts)-1]] = val
	}
	return out
}

// Flatten — обратная операция к Unflatten.
func Flatten(nested map[string]any) map[string]any {
	out := make(map[string]any)
	flattenInto(out, "", nested)
	return out
}

func flattenInto(out map[string]any, prefix string, node map[string]any) {
	for key, val := range node {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		switch child := val.(type) {
		case map[string]any:
			flattenInto(out, full, child)
		case map[any]any:
			converted := make(map[string]any, len(child))
			for k, v := range child {
				converted[fmt.Sprint(k)] = v
			}
			flattenInto(out, full, converted)
		default:
			out[full] = val
		}
	}
}
