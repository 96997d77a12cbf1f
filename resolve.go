package replacet

import "strings"

// NamespaceSeparator separates an explicit namespace from the path in a key: "common:title".
const NamespaceSeparator = ":"

// SplitKey splits a translation key into its namespace and dotted path.
//
// A key without a namespace uses the first namespace in scope. With no namespace in scope
// the namespace is empty, which never resolves.
func SplitKey(key string, scopes []string) (namespace, path string) {
	if ns, p, ok := strings.Cut(key, NamespaceSeparator); ok {
		return ns, p
	}

	if len(scopes) > 0 {
		return scopes[0], key
	}

	return "", key
}

// resolve looks a key up against the namespaces currently in scope.
func (t *Transformer) resolve(key string) (string, error) {
	namespace, path := SplitKey(key, t.scopes)
	return t.cache.Get(namespace, path)
}
