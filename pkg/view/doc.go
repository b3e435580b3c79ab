// Package view parses .view templates: JSX-like markup whose embedded
// expressions are Go.
//
// A template is a sequence of nodes:
//
//	<!DOCTYPE html>
//	<ul class={styles.List} hidden>
//	    <!-- "items" -->
//	    <li>"count: " {len(items)}</li>
//	    <>
//	        <br/>
//	    </>
//	</ul>
//
// Parse returns the root nodes or an *ErrorList of positioned errors.
package view
