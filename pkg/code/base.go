package code

// Registered response codes. 0 is success, 100xxxxx are generic server
// failures, 200xxxxx are domain failures grouped by component.
var (
	Success = NewSuss(0, lang{en: "success", tr: "başarılı"})

	ErrorServerInternal  = NewError(10000001, lang{en: "internal server error", tr: "sunucu iç hatası"})
	ErrorInvalidParams   = NewError(10000002, lang{en: "invalid request parameters", tr: "geçersiz istek parametreleri"})
	ErrorTooManyRequests = NewError(10000003, lang{en: "too many requests", tr: "çok fazla istek"})
	ErrorNotFound        = NewError(10000004, lang{en: "resource not found", tr: "kaynak bulunamadı"})

	// access guard
	ErrorNotAdminAuthToken     = NewError(20010001, lang{en: "admin token missing", tr: "yönetici anahtarı eksik"})
	ErrorInvalidAdminAuthToken = NewError(20010002, lang{en: "admin token invalid or expired", tr: "yönetici anahtarı geçersiz veya süresi dolmuş"})
	ErrorUnauthorized          = NewError(20010003, lang{en: "operation requires admin login", tr: "bu işlem yönetici girişi gerektirir"})
	ErrorPasswordIncorrect     = NewError(20010004, lang{en: "password incorrect", tr: "şifre hatalı"})
	ErrorAdminDigestNotSet     = NewError(20010005, lang{en: "admin password digest is not configured", tr: "yönetici şifre özeti yapılandırılmamış"})

	// category store
	ErrorDateAlreadyExists = NewError(20020001, lang{en: "this date is already marked", tr: "bu tarih zaten işaretli"})
	ErrorEntryNotFound     = NewError(20020002, lang{en: "no entry exists for this date", tr: "bu tarih için kayıt bulunamadı"})
	ErrorInvalidDateKey    = NewError(20020003, lang{en: "invalid calendar date", tr: "geçersiz takvim tarihi"})
	ErrorUnknownCategory   = NewError(20020004, lang{en: "unknown category", tr: "bilinmeyen kategori"})

	// calendar grid
	ErrorInvalidMonth = NewError(20030001, lang{en: "month must be between 1 and 12", tr: "ay 1 ile 12 arasında olmalı"})
	ErrorInvalidYear  = NewError(20030002, lang{en: "year is outside the supported range", tr: "yıl desteklenen aralığın dışında"})

	// persistence synchronizer
	ErrorSnapshotConflict   = NewError(20040001, lang{en: "snapshot changed by another session, reload and retry", tr: "anlık görüntü başka bir oturum tarafından değiştirildi, yeniden yükleyip tekrar deneyin"})
	ErrorStorageUnavailable = NewError(20040002, lang{en: "snapshot storage unavailable", tr: "anlık görüntü depolaması kullanılamıyor"})
	ErrorSnapshotCorrupt    = NewError(20040003, lang{en: "stored snapshot is corrupt", tr: "kayıtlı anlık görüntü bozuk"})
	ErrorInvalidStorageType = NewError(20040004, lang{en: "invalid storage type", tr: "geçersiz depolama türü"})
	ErrorBlobNotFound       = NewError(20040005, lang{en: "snapshot blob does not exist", tr: "anlık görüntü dosyası mevcut değil"})
)
