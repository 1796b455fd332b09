package curseforge

import (
	"net/url"
	"strconv"
)

// ModLoaderType identifies a Minecraft mod loader in search and file
// filters. The zero value means no loader filter is applied.
type ModLoaderType int

const (
	// ModLoaderAny applies no loader filter
	ModLoaderAny ModLoaderType = iota
	// ModLoaderForge targets Minecraft Forge
	ModLoaderForge
	// ModLoaderCauldron targets Cauldron
	ModLoaderCauldron
	// ModLoaderLiteLoader targets LiteLoader
	ModLoaderLiteLoader
	// ModLoaderFabric targets Fabric
	ModLoaderFabric
	// ModLoaderQuilt targets Quilt
	ModLoaderQuilt
	// ModLoaderNeoForge targets NeoForge
	ModLoaderNeoForge
)

// String returns the string representation of a ModLoaderType
func (t ModLoaderType) String() string {
	switch t {
	case ModLoaderForge:
		return "Forge"
	case ModLoaderCauldron:
		return "Cauldron"
	case ModLoaderLiteLoader:
		return "LiteLoader"
	case ModLoaderFabric:
		return "Fabric"
	case ModLoaderQuilt:
		return "Quilt"
	case ModLoaderNeoForge:
		return "NeoForge"
	default:
		return "Any"
	}
}

// EncodeValues implements query.Encoder. Without it go-querystring falls
// back to fmt.Sprint, which would put the String() name on the wire
// instead of the numeric value the API takes. Any enum in an options
// struct that grows a String method needs the same treatment.
func (t ModLoaderType) EncodeValues(key string, v *url.Values) error {
	v.Set(key, strconv.Itoa(int(t)))
	return nil
}

// ModsSearchSortField selects the ordering criterion for mod searches
type ModsSearchSortField int

const (
	// SortByFeatured sorts by featured status
	SortByFeatured ModsSearchSortField = iota + 1
	// SortByPopularity sorts by popularity
	SortByPopularity
	// SortByLastUpdated sorts by last update time
	SortByLastUpdated
	// SortByName sorts by name
	SortByName
	// SortByAuthor sorts by author
	SortByAuthor
	// SortByTotalDownloads sorts by download count
	SortByTotalDownloads
	// SortByCategory sorts by category
	SortByCategory
	// SortByGameVersion sorts by game version
	SortByGameVersion
	// SortByEarlyAccess sorts by early-access status
	SortByEarlyAccess
	// SortByFeaturedReleased sorts by featured release date
	SortByFeaturedReleased
	// SortByReleasedDate sorts by release date
	SortByReleasedDate
	// SortByRating sorts by rating
	SortByRating
)

// SortOrder selects ascending or descending result ordering
type SortOrder string

const (
	// SortOrderAscending sorts ascending
	SortOrderAscending SortOrder = "asc"
	// SortOrderDescending sorts descending
	SortOrderDescending SortOrder = "desc"
)

// FileReleaseType classifies the maturity of a file
type FileReleaseType int

const (
	// ReleaseTypeRelease is a stable release
	ReleaseTypeRelease FileReleaseType = iota + 1
	// ReleaseTypeBeta is a beta release
	ReleaseTypeBeta
	// ReleaseTypeAlpha is an alpha release
	ReleaseTypeAlpha
)

// String returns the string representation of a FileReleaseType
func (t FileReleaseType) String() string {
	switch t {
	case ReleaseTypeRelease:
		return "release"
	case ReleaseTypeBeta:
		return "beta"
	case ReleaseTypeAlpha:
		return "alpha"
	default:
		return "unknown"
	}
}

// FileStatus describes a file's processing state on the server
type FileStatus int

const (
	FileStatusProcessing FileStatus = iota + 1
	FileStatusChangesRequired
	FileStatusUnderReview
	FileStatusApproved
	FileStatusRejected
	FileStatusMalwareDetected
	FileStatusDeleted
	FileStatusArchived
	FileStatusTesting
	FileStatusReleased
	FileStatusReadyForReview
	FileStatusDeprecated
	FileStatusBaking
	FileStatusAwaitingPublishing
	FileStatusFailedPublishing
)

// ModStatus describes a mod's lifecycle state on the server
type ModStatus int

const (
	ModStatusNew ModStatus = iota + 1
	ModStatusChangesRequired
	ModStatusUnderSoftReview
	ModStatusApproved
	ModStatusRejected
	ModStatusChangesMade
	ModStatusInactive
	ModStatusAbandoned
	ModStatusDeleted
	ModStatusUnderReview
)

// HashAlgo identifies the algorithm of a file hash
type HashAlgo int

const (
	// HashAlgoSha1 is a SHA-1 digest
	HashAlgoSha1 HashAlgo = iota + 1
	// HashAlgoMd5 is an MD5 digest
	HashAlgoMd5
)

// String returns the string representation of a HashAlgo
func (a HashAlgo) String() string {
	switch a {
	case HashAlgoSha1:
		return "sha1"
	case HashAlgoMd5:
		return "md5"
	default:
		return "unknown"
	}
}

// FileRelationType describes how a dependency relates to a file
type FileRelationType int

const (
	// RelationEmbeddedLibrary is a library shipped inside the file
	RelationEmbeddedLibrary FileRelationType = iota + 1
	// RelationOptionalDependency is optional
	RelationOptionalDependency
	// RelationRequiredDependency is required
	RelationRequiredDependency
	// RelationTool is a companion tool
	RelationTool
	// RelationIncompatible marks a conflicting mod
	RelationIncompatible
	// RelationInclude is an include
	RelationInclude
)

// CoreStatus describes whether a game is live on the API
type CoreStatus int

const (
	CoreStatusDraft CoreStatus = iota + 1
	CoreStatusTest
	CoreStatusPendingReview
	CoreStatusRejected
	CoreStatusApproved
	CoreStatusLive
)

// CoreAPIStatus describes whether a game's API surface is public
type CoreAPIStatus int

const (
	CoreAPIStatusPrivate CoreAPIStatus = iota + 1
	CoreAPIStatusPublic
)

// GameVersionTypeStatus describes a version type's visibility
type GameVersionTypeStatus int

const (
	GameVersionTypeStatusNormal GameVersionTypeStatus = iota + 1
	GameVersionTypeStatusDeleted
)
