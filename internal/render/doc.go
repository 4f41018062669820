// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package render turns domain values into wire payloads.
//
// The representation is chosen per request from the Accept header: the exact
// value "application/xml" selects XML, anything else (including no header)
// selects JSON. Handlers build a [Payload] with [Object], [Collection] or
// [Error] and send it with [Write]; the status code is always the caller's
// choice.
//
// XML documents mirror the JSON shape: scalar fields become attributes named
// after their JSON field names, nested objects and collections become child
// elements. A single object is written compactly:
//
//	<?xml version="1.0"?><item id="1" name="Widget"/>
//
// while a collection is indented, one child per element:
//
//	<?xml version="1.0"?>
//	<items>
//	  <item id="1" name="Widget"/>
//	</items>
package render
