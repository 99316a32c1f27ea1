package config

// SupabaseConfig exposes the identity-provider credentials.
// The project URL and anonymous key are public; the JWT secret is private
// and is only ever used for local token verification - it is never sent
// to the provider.
type SupabaseConfig interface {
	GetSupabaseURL() string
	GetSupabaseAnonKey() string
	GetSupabaseJWTSecret() []byte
	GetSupabaseProjectRef() string
}

type Supabase struct{}

var _ SupabaseConfig = Supabase{}

func (Supabase) GetSupabaseURL() string {
	return GetEnv("SUPABASE_URL", "http://localhost:54321")
}

func (Supabase) GetSupabaseAnonKey() string {
	return GetEnv("SUPABASE_ANON_KEY", "")
}

func (Supabase) GetSupabaseJWTSecret() []byte {
	return []byte(GetEnv("SUPABASE_JWT_SECRET", ""))
}

// GetSupabaseProjectRef returns the project reference used in the provider
// cookie names (sb-<ref>-auth-token)
func (Supabase) GetSupabaseProjectRef() string {
	return GetEnv("SUPABASE_PROJECT_REF", "localhost")
}
