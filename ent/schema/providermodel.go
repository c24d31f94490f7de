package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// ProviderModel holds the schema definition for the ProviderModel entity:
// a chat or speech-to-text model reachable through the provider bridge.
// API keys are stored encrypted (scrypt-derived AES-256-GCM, see pkg/secrets)
// and decrypted only at call time.
type ProviderModel struct {
	ent.Schema
}

// Fields of the ProviderModel.
func (ProviderModel) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("model_id").
			Unique().
			Immutable(),
		field.String("name").
			Unique(),
		field.Enum("provider").
			Values("openai", "anthropic", "google"),
		field.String("model_name").
			Comment("Provider-side model identifier (e.g. 'whisper-1')"),
		field.String("encrypted_api_key").
			Optional().
			Comment("Base64 of salt||nonce||ciphertext"),
		field.String("base_url").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}
