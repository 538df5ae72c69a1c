package pgescape

// keyword identifies a reserved word. Only words that are not unreserved in
// the PostgreSQL grammar (src/include/parser/kwlist.h) are listed, since only
// those need quoting when used as an identifier.
type keyword uint8

const (
	kwAll keyword = iota
	kwAnalyse
	kwAnalyze
	kwAnd
	kwAny
	kwArray
	kwAs
	kwAsc
	kwAsymmetric
	kwAuthorization
	kwBetween
	kwBigint
	kwBinary
	kwBit
	kwBoolean
	kwBoth
	kwCase
	kwCast
	kwChar
	kwCharacter
	kwCheck
	kwCoalesce
	kwCollate
	kwCollation
	kwColumn
	kwConcurrently
	kwConstraint
	kwCreate
	kwCross
	kwCurrentCatalog
	kwCurrentDate
	kwCurrentRole
	kwCurrentSchema
	kwCurrentTime
	kwCurrentTimestamp
	kwCurrentUser
	kwDec
	kwDecimal
	kwDefault
	kwDeferrable
	kwDesc
	kwDistinct
	kwDo
	kwElse
	kwEnd
	kwExcept
	kwExists
	kwExtract
	kwFalse
	kwFetch
	kwFloat
	kwFor
	kwForeign
	kwFreeze
	kwFrom
	kwFull
	kwGrant
	kwGreatest
	kwGroup
	kwGrouping
	kwHaving
	kwIlike
	kwIn
	kwInitially
	kwInner
	kwInout
	kwInt
	kwInteger
	kwIntersect
	kwInterval
	kwInto
	kwIs
	kwIsnull
	kwJoin
	kwJSON
	kwJSONArray
	kwJSONArrayagg
	kwJSONExists
	kwJSONObject
	kwJSONObjectagg
	kwJSONQuery
	kwJSONScalar
	kwJSONSerialize
	kwJSONTable
	kwJSONValue
	kwLateral
	kwLeading
	kwLeast
	kwLeft
	kwLike
	kwLimit
	kwLocaltime
	kwLocaltimestamp
	kwMergeAction
	kwNational
	kwNatural
	kwNchar
	kwNone
	kwNormalize
	kwNot
	kwNotnull
	kwNull
	kwNullif
	kwNumeric
	kwOffset
	kwOn
	kwOnly
	kwOr
	kwOrder
	kwOut
	kwOuter
	kwOverlaps
	kwOverlay
	kwPlacing
	kwPosition
	kwPrecision
	kwPrimary
	kwReal
	kwReferences
	kwReturning
	kwRight
	kwRow
	kwSelect
	kwSessionUser
	kwSetof
	kwSimilar
	kwSmallint
	kwSome
	kwSubstring
	kwSymmetric
	kwSystemUser
	kwTable
	kwTablesample
	kwThen
	kwTime
	kwTimestamp
	kwTo
	kwTrailing
	kwTreat
	kwTrim
	kwTrue
	kwUnion
	kwUnique
	kwUser
	kwUsing
	kwValues
	kwVarchar
	kwVariadic
	kwVerbose
	kwWhen
	kwWhere
	kwWindow
	kwWith
	kwXmlattributes
	kwXmlconcat
	kwXmlelement
	kwXmlexists
	kwXmlforest
	kwXmlnamespaces
	kwXmlparse
	kwXmlpi
	kwXmlroot
	kwXmlserialize
	kwXmltable
)

// keywords maps the lowercase spelling of each reserved word to its tag.
// It is never written after initialization.
var keywords = map[string]keyword{
	"all":               kwAll,
	"analyse":           kwAnalyse,
	"analyze":           kwAnalyze,
	"and":               kwAnd,
	"any":               kwAny,
	"array":             kwArray,
	"as":                kwAs,
	"asc":               kwAsc,
	"asymmetric":        kwAsymmetric,
	"authorization":     kwAuthorization,
	"between":           kwBetween,
	"bigint":            kwBigint,
	"binary":            kwBinary,
	"bit":               kwBit,
	"boolean":           kwBoolean,
	"both":              kwBoth,
	"case":              kwCase,
	"cast":              kwCast,
	"char":              kwChar,
	"character":         kwCharacter,
	"check":             kwCheck,
	"coalesce":          kwCoalesce,
	"collate":           kwCollate,
	"collation":         kwCollation,
	"column":            kwColumn,
	"concurrently":      kwConcurrently,
	"constraint":        kwConstraint,
	"create":            kwCreate,
	"cross":             kwCross,
	"current_catalog":   kwCurrentCatalog,
	"current_date":      kwCurrentDate,
	"current_role":      kwCurrentRole,
	"current_schema":    kwCurrentSchema,
	"current_time":      kwCurrentTime,
	"current_timestamp": kwCurrentTimestamp,
	"current_user":      kwCurrentUser,
	"dec":               kwDec,
	"decimal":           kwDecimal,
	"default":           kwDefault,
	"deferrable":        kwDeferrable,
	"desc":              kwDesc,
	"distinct":          kwDistinct,
	"do":                kwDo,
	"else":              kwElse,
	"end":               kwEnd,
	"except":            kwExcept,
	"exists":            kwExists,
	"extract":           kwExtract,
	"false":             kwFalse,
	"fetch":             kwFetch,
	"float":             kwFloat,
	"for":               kwFor,
	"foreign":           kwForeign,
	"freeze":            kwFreeze,
	"from":              kwFrom,
	"full":              kwFull,
	"grant":             kwGrant,
	"greatest":          kwGreatest,
	"group":             kwGroup,
	"grouping":          kwGrouping,
	"having":            kwHaving,
	"ilike":             kwIlike,
	"in":                kwIn,
	"initially":         kwInitially,
	"inner":             kwInner,
	"inout":             kwInout,
	"int":               kwInt,
	"integer":           kwInteger,
	"intersect":         kwIntersect,
	"interval":          kwInterval,
	"into":              kwInto,
	"is":                kwIs,
	"isnull":            kwIsnull,
	"join":              kwJoin,
	"json":              kwJSON,
	"json_array":        kwJSONArray,
	"json_arrayagg":     kwJSONArrayagg,
	"json_exists":       kwJSONExists,
	"json_object":       kwJSONObject,
	"json_objectagg":    kwJSONObjectagg,
	"json_query":        kwJSONQuery,
	"json_scalar":       kwJSONScalar,
	"json_serialize":    kwJSONSerialize,
	"json_table":        kwJSONTable,
	"json_value":        kwJSONValue,
	"lateral":           kwLateral,
	"leading":           kwLeading,
	"least":             kwLeast,
	"left":              kwLeft,
	"like":              kwLike,
	"limit":             kwLimit,
	"localtime":         kwLocaltime,
	"localtimestamp":    kwLocaltimestamp,
	"merge_action":      kwMergeAction,
	"national":          kwNational,
	"natural":           kwNatural,
	"nchar":             kwNchar,
	"none":              kwNone,
	"normalize":         kwNormalize,
	"not":               kwNot,
	"notnull":           kwNotnull,
	"null":              kwNull,
	"nullif":            kwNullif,
	"numeric":           kwNumeric,
	"offset":            kwOffset,
	"on":                kwOn,
	"only":              kwOnly,
	"or":                kwOr,
	"order":             kwOrder,
	"out":               kwOut,
	"outer":             kwOuter,
	"overlaps":          kwOverlaps,
	"overlay":           kwOverlay,
	"placing":           kwPlacing,
	"position":          kwPosition,
	"precision":         kwPrecision,
	"primary":           kwPrimary,
	"real":              kwReal,
	"references":        kwReferences,
	"returning":         kwReturning,
	"right":             kwRight,
	"row":               kwRow,
	"select":            kwSelect,
	"session_user":      kwSessionUser,
	"setof":             kwSetof,
	"similar":           kwSimilar,
	"smallint":          kwSmallint,
	"some":              kwSome,
	"substring":         kwSubstring,
	"symmetric":         kwSymmetric,
	"system_user":       kwSystemUser,
	"table":             kwTable,
	"tablesample":       kwTablesample,
	"then":              kwThen,
	"time":              kwTime,
	"timestamp":         kwTimestamp,
	"to":                kwTo,
	"trailing":          kwTrailing,
	"treat":             kwTreat,
	"trim":              kwTrim,
	"true":              kwTrue,
	"union":             kwUnion,
	"unique":            kwUnique,
	"user":              kwUser,
	"using":             kwUsing,
	"values":            kwValues,
	"varchar":           kwVarchar,
	"variadic":          kwVariadic,
	"verbose":           kwVerbose,
	"when":              kwWhen,
	"where":             kwWhere,
	"window":            kwWindow,
	"with":              kwWith,
	"xmlattributes":     kwXmlattributes,
	"xmlconcat":         kwXmlconcat,
	"xmlelement":        kwXmlelement,
	"xmlexists":         kwXmlexists,
	"xmlforest":         kwXmlforest,
	"xmlnamespaces":     kwXmlnamespaces,
	"xmlparse":          kwXmlparse,
	"xmlpi":             kwXmlpi,
	"xmlroot":           kwXmlroot,
	"xmlserialize":      kwXmlserialize,
	"xmltable":          kwXmltable,
}

// lookupKeyword reports whether word is exactly a reserved word. The match
// is case-sensitive; callers must pass the candidate as-is.
func lookupKeyword(word string) (keyword, bool) {
	kw, ok := keywords[word]
	return kw, ok
}
