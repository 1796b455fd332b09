package curseforge

import "time"

// Pagination describes the slice of a larger result set returned by a
// paginated endpoint. TotalCount is -1 when the server does not know the
// full size of the result set.
type Pagination struct {
	// Index is the zero-based start position of this slice
	Index int `json:"index"`
	// PageSize is the requested page size
	PageSize int `json:"pageSize"`
	// ResultCount is the number of results actually returned
	ResultCount int `json:"resultCount"`
	// TotalCount is the size of the whole result set, or -1 if unknown
	TotalCount int64 `json:"totalCount"`
}

// Game represents a game tracked by CurseForge
type Game struct {
	ID           int           `json:"id"`
	Name         string        `json:"name"`
	Slug         string        `json:"slug"`
	DateModified time.Time     `json:"dateModified"`
	Assets       GameAssets    `json:"assets"`
	Status       CoreStatus    `json:"status"`
	APIStatus    CoreAPIStatus `json:"apiStatus"`
}

// GameAssets holds the artwork URLs for a game
type GameAssets struct {
	IconURL  string `json:"iconUrl"`
	TileURL  string `json:"tileUrl"`
	CoverURL string `json:"coverUrl"`
}

// GameVersionsByType groups the known version strings of a game under a
// version type id
type GameVersionsByType struct {
	Type     int      `json:"type"`
	Versions []string `json:"versions"`
}

// GameVersionType represents a grouping of game versions, e.g. a major
// release line
type GameVersionType struct {
	ID         int                   `json:"id"`
	GameID     int                   `json:"gameId"`
	Name       string                `json:"name"`
	Slug       string                `json:"slug"`
	IsSyncable bool                  `json:"isSyncable"`
	Status     GameVersionTypeStatus `json:"status"`
}

// Category represents a mod category or class. Classes are top-level
// categories (IsClass true); regular categories reference their class via
// ClassID. The client never resolves these references.
type Category struct {
	ID               int       `json:"id"`
	GameID           int       `json:"gameId"`
	Name             string    `json:"name"`
	Slug             string    `json:"slug"`
	URL              string    `json:"url"`
	IconURL          string    `json:"iconUrl"`
	DateModified     time.Time `json:"dateModified"`
	IsClass          bool      `json:"isClass,omitempty"`
	ClassID          int       `json:"classId,omitempty"`
	ParentCategoryID int       `json:"parentCategoryId,omitempty"`
	DisplayIndex     int       `json:"displayIndex,omitempty"`
}

// ModLinks holds the external URLs associated with a mod
type ModLinks struct {
	WebsiteURL string `json:"websiteUrl"`
	WikiURL    string `json:"wikiUrl"`
	IssuesURL  string `json:"issuesUrl"`
	SourceURL  string `json:"sourceUrl"`
}

// ModAuthor represents an author of a mod
type ModAuthor struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ModAsset represents an image attached to a mod (logo or screenshot)
type ModAsset struct {
	ID           int    `json:"id"`
	ModID        int    `json:"modId"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnailUrl"`
	URL          string `json:"url"`
}

// Mod represents a mod project
type Mod struct {
	ID                   int         `json:"id"`
	GameID               int         `json:"gameId"`
	Name                 string      `json:"name"`
	Slug                 string      `json:"slug"`
	Links                ModLinks    `json:"links"`
	Summary              string      `json:"summary"`
	Status               ModStatus   `json:"status"`
	DownloadCount        int64       `json:"downloadCount"`
	IsFeatured           bool        `json:"isFeatured"`
	PrimaryCategoryID    int         `json:"primaryCategoryId"`
	Categories           []Category  `json:"categories"`
	ClassID              int         `json:"classId,omitempty"`
	Authors              []ModAuthor `json:"authors"`
	Logo                 *ModAsset   `json:"logo,omitempty"`
	Screenshots          []ModAsset  `json:"screenshots"`
	MainFileID           int         `json:"mainFileId"`
	LatestFiles          []File      `json:"latestFiles"`
	LatestFilesIndexes   []FileIndex `json:"latestFilesIndexes"`
	DateCreated          time.Time   `json:"dateCreated"`
	DateModified         time.Time   `json:"dateModified"`
	DateReleased         time.Time   `json:"dateReleased"`
	AllowModDistribution *bool       `json:"allowModDistribution,omitempty"`
	GamePopularityRank   int         `json:"gamePopularityRank"`
	IsAvailable          bool        `json:"isAvailable"`
	ThumbsUpCount        int         `json:"thumbsUpCount"`
}

// FileHash is a content digest of a file
type FileHash struct {
	Value string   `json:"value"`
	Algo  HashAlgo `json:"algo"`
}

// SortableGameVersion carries a game version together with its server-side
// sort keys
type SortableGameVersion struct {
	GameVersionName        string    `json:"gameVersionName"`
	GameVersionPadded      string    `json:"gameVersionPadded"`
	GameVersion            string    `json:"gameVersion"`
	GameVersionReleaseDate time.Time `json:"gameVersionReleaseDate"`
	GameVersionTypeID      int       `json:"gameVersionTypeId,omitempty"`
}

// FileDependency links a file to another mod it relates to. The mod id is
// a foreign key; resolving it is the caller's job.
type FileDependency struct {
	ModID        int              `json:"modId"`
	RelationType FileRelationType `json:"relationType"`
}

// FileModule is a top-level entry of a file's archive with its fingerprint
type FileModule struct {
	Name        string `json:"name"`
	Fingerprint uint32 `json:"fingerprint"`
}

// File represents a single downloadable file of a mod
type File struct {
	ID                   int                   `json:"id"`
	GameID               int                   `json:"gameId"`
	ModID                int                   `json:"modId"`
	IsAvailable          bool                  `json:"isAvailable"`
	DisplayName          string                `json:"displayName"`
	FileName             string                `json:"fileName"`
	ReleaseType          FileReleaseType       `json:"releaseType"`
	FileStatus           FileStatus            `json:"fileStatus"`
	Hashes               []FileHash            `json:"hashes"`
	FileDate             time.Time             `json:"fileDate"`
	FileLength           int64                 `json:"fileLength"`
	DownloadCount        int64                 `json:"downloadCount"`
	FileSizeOnDisk       int64                 `json:"fileSizeOnDisk,omitempty"`
	DownloadURL          string                `json:"downloadUrl"`
	GameVersions         []string              `json:"gameVersions"`
	SortableGameVersions []SortableGameVersion `json:"sortableGameVersions"`
	Dependencies         []FileDependency      `json:"dependencies"`
	ExposeAsAlternative  bool                  `json:"exposeAsAlternative,omitempty"`
	ParentProjectFileID  int                   `json:"parentProjectFileId,omitempty"`
	AlternateFileID      int                   `json:"alternateFileId,omitempty"`
	IsServerPack         bool                  `json:"isServerPack,omitempty"`
	ServerPackFileID     int                   `json:"serverPackFileId,omitempty"`
	IsEarlyAccessContent bool                  `json:"isEarlyAccessContent,omitempty"`
	EarlyAccessEndDate   *time.Time            `json:"earlyAccessEndDate,omitempty"`
	FileFingerprint      uint32                `json:"fileFingerprint"`
	Modules              []FileModule          `json:"modules"`
}

// FileIndex is a compact projection of a mod's latest file per game
// version and loader
type FileIndex struct {
	GameVersion       string          `json:"gameVersion"`
	FileID            int             `json:"fileId"`
	Filename          string          `json:"filename"`
	ReleaseType       FileReleaseType `json:"releaseType"`
	GameVersionTypeID int             `json:"gameVersionTypeId,omitempty"`
	ModLoader         ModLoaderType   `json:"modLoader,omitempty"`
}

// FeaturedMods groups the mods returned by the featured-mods query
type FeaturedMods struct {
	Featured        []Mod `json:"featured"`
	Popular         []Mod `json:"popular"`
	RecentlyUpdated []Mod `json:"recentlyUpdated"`
}

// FingerprintMatch pairs a matched fingerprint with the file it identifies
type FingerprintMatch struct {
	ID          int    `json:"id"`
	File        File   `json:"file"`
	LatestFiles []File `json:"latestFiles"`
}

// FingerprintsMatches is the result of an exact fingerprint match query
type FingerprintsMatches struct {
	IsCacheBuilt             bool                `json:"isCacheBuilt"`
	ExactMatches             []FingerprintMatch  `json:"exactMatches"`
	ExactFingerprints        []uint32            `json:"exactFingerprints"`
	PartialMatches           []FingerprintMatch  `json:"partialMatches"`
	PartialMatchFingerprints map[string][]uint32 `json:"partialMatchFingerprints"`
	InstalledFingerprints    []uint32            `json:"installedFingerprints"`
	UnmatchedFingerprints    []uint32            `json:"unmatchedFingerprints"`
}

// FolderFingerprints names a folder and the fingerprints of the files in
// it, the input unit of a fuzzy match query
type FolderFingerprints struct {
	FolderName   string   `json:"foldername"`
	Fingerprints []uint32 `json:"fingerprints"`
}

// FuzzyMatch is one approximate fingerprint match
type FuzzyMatch struct {
	ID           int      `json:"id"`
	File         File     `json:"file"`
	LatestFiles  []File   `json:"latestFiles"`
	Fingerprints []uint32 `json:"fingerprints"`
}
