package language

// DefaultCode is the fallback language for users whose binding is missing or
// dangling.
const DefaultCode = "en"

// Language is one entry of the canonical language registry. Code is the
// natural key ("en", "ar"). IsRTL is fixed when the language is introduced;
// no write path changes it afterwards. Deactivation removes a language from
// user-facing selection without deleting history.
type Language struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	Code       string `json:"code" gorm:"size:10;uniqueIndex;not null"`
	Name       string `json:"name" gorm:"size:100;not null"`
	NativeName string `json:"native_name" gorm:"size:100;not null"`
	IsRTL      bool   `json:"is_rtl" gorm:"not null;default:false"`
	IsActive   bool   `json:"is_active" gorm:"not null;default:true"`
}

// Translation is one key/language pair of the UI translation table.
type Translation struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Key   string `json:"key" gorm:"size:255;not null;uniqueIndex:idx_translations_key_code"`
	Code  string `json:"code" gorm:"size:10;not null;uniqueIndex:idx_translations_key_code"`
	Value string `json:"value" gorm:"type:text;not null"`
}
